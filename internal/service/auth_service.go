package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dsikarwar-ops/expense-tracker/internal/auth"
	"github.com/dsikarwar-ops/expense-tracker/internal/config"
	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
	"github.com/dsikarwar-ops/expense-tracker/internal/repository"
	"github.com/dsikarwar-ops/expense-tracker/internal/validation"
	apperrors "github.com/dsikarwar-ops/expense-tracker/pkg/util"
)

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Signup registers a new account and issues a session token.
func (s *AuthService) Signup(ctx context.Context, input validation.UserInput) (*domain.User, string, time.Time, error) {
	if errs := validation.ValidateUser(input, true); len(errs) > 0 {
		return nil, "", time.Time{}, apperrors.NewValidationError(strings.Join(errs, ", "))
	}

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.users.GetByUsernameOrEmail(ctx, username, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("Username or Email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	role := domain.Role(input.Role)
	if !role.Valid() {
		role = domain.RoleEmployee
	}

	user := &domain.User{
		Username:     username,
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates by username and password.
func (s *AuthService) Login(ctx context.Context, input validation.UserInput) (*domain.User, string, time.Time, error) {
	if errs := validation.ValidateUser(input, false); len(errs) > 0 {
		return nil, "", time.Time{}, apperrors.NewValidationError(strings.Join(errs, ", "))
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid username or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, input.Password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid username or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}
