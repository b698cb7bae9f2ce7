package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dsikarwar-ops/expense-tracker/internal/api/dto"
	"github.com/dsikarwar-ops/expense-tracker/internal/service"
	"github.com/dsikarwar-ops/expense-tracker/internal/validation"
	apperrors "github.com/dsikarwar-ops/expense-tracker/pkg/util"
)

// UsersHandler exposes the signup and login endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Signup handles POST /api/users/signup.
func (h *UsersHandler) Signup(c *fiber.Ctx) error {
	var req validation.UserInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	user, token, _, err := h.auth.Signup(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"token":   token,
		"user":    dto.NewUserResponse(user),
		"status":  http.StatusCreated,
		"message": "User registered successfully",
	})
}

// Login handles POST /api/users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req validation.UserInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	user, token, _, err := h.auth.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"user":    dto.NewUserResponse(user),
		"status":  http.StatusOK,
		"message": "Login successful",
	})
}
