package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dsikarwar-ops/expense-tracker/internal/service"
)

// AnalyticsHandler exposes the admin aggregation endpoints.
type AnalyticsHandler struct {
	service *service.ExpenseService
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(expenseService *service.ExpenseService) *AnalyticsHandler {
	return &AnalyticsHandler{service: expenseService}
}

// CategoryTotals handles GET /api/expenses/admin/analytics/category-totals.
func (h *AnalyticsHandler) CategoryTotals(c *fiber.Ctx) error {
	totals, err := h.service.CategoryTotals(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": totals})
}

// UserTotals handles GET /api/expenses/admin/analytics/users.
func (h *AnalyticsHandler) UserTotals(c *fiber.Ctx) error {
	totals, err := h.service.UserTotals(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": totals})
}
