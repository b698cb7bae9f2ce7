package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dsikarwar-ops/expense-tracker/internal/api/dto"
	"github.com/dsikarwar-ops/expense-tracker/internal/auth"
	"github.com/dsikarwar-ops/expense-tracker/internal/domain"
	"github.com/dsikarwar-ops/expense-tracker/internal/service"
	"github.com/dsikarwar-ops/expense-tracker/internal/validation"
	apperrors "github.com/dsikarwar-ops/expense-tracker/pkg/util"
)

// ExpensesHandler manages the expense CRUD and review endpoints.
type ExpensesHandler struct {
	service *service.ExpenseService
}

// NewExpensesHandler constructs the handler.
func NewExpensesHandler(expenseService *service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{service: expenseService}
}

// Create handles POST /api/expenses.
func (h *ExpensesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authorization token is required.")
	}

	var req validation.ExpenseInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	expense, err := h.service.Create(c.Context(), principal.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":   []dto.ExpenseResponse{dto.NewExpenseResponse(expense)},
		"status": http.StatusCreated,
	})
}

// ListMine handles GET /api/expenses.
func (h *ExpensesHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authorization token is required.")
	}

	expenses, err := h.service.ListMine(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":   dto.NewExpenseResponses(expenses),
		"status": http.StatusOK,
	})
}

// ListAll handles GET /api/expenses/all (admin only, owner fields populated).
func (h *ExpensesHandler) ListAll(c *fiber.Ctx) error {
	expenses, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":   dto.NewExpenseResponses(expenses),
		"status": http.StatusOK,
	})
}

// Update handles PUT /api/expenses/:id. A body containing exactly one key,
// "status", is an admin review transition; anything else is a full-field
// owner edit.
func (h *ExpensesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authorization token is required.")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if statusRaw, isStatusOnly := statusOnlyPayload(raw); isStatusOnly {
		if !principal.IsAdmin() {
			return apperrors.NewForbidden("Access denied. Admins only.")
		}
		var status domain.ExpenseStatus
		if err := json.Unmarshal(statusRaw, &status); err != nil {
			return apperrors.NewValidationError("invalid payload")
		}
		expense, err := h.service.SetStatus(c.Context(), c.Params("id"), principal.UserID, status)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"data":   []dto.ExpenseResponse{dto.NewExpenseResponse(expense)},
			"status": http.StatusOK,
		})
	}

	var req validation.ExpenseInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	expense, err := h.service.UpdateFields(c.Context(), c.Params("id"), principal.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data":   []dto.ExpenseResponse{dto.NewExpenseResponse(expense)},
		"status": http.StatusOK,
	})
}

// Delete handles DELETE /api/expenses/:id.
func (h *ExpensesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authorization token is required.")
	}

	if err := h.service.Delete(c.Context(), c.Params("id"), principal.UserID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  http.StatusOK,
		"message": "Expense deleted",
	})
}

func statusOnlyPayload(raw map[string]json.RawMessage) (json.RawMessage, bool) {
	if len(raw) != 1 {
		return nil, false
	}
	statusRaw, ok := raw["status"]
	return statusRaw, ok
}
