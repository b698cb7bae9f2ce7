package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
	apperrors "github.com/dsikarwar-ops/expense-tracker/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller, taken from token claims.
type Principal struct {
	UserID   string
	Username string
	Role     domain.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

// Middleware validates bearer tokens and stores the principal on the
// request context. A missing or malformed header yields 401; a token that
// fails validation or has expired yields 403.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Authorization token is required.")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Authorization token is required.")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewForbidden("Invalid or expired token.")
	}

	c.Locals(principalKey, &Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
