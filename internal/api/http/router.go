package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dsikarwar-ops/expense-tracker/internal/api/http/handlers"
	"github.com/dsikarwar-ops/expense-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Expenses       *handlers.ExpensesHandler
	Analytics      *handlers.AnalyticsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/signup", cfg.Users.Signup)
	users.Post("/login", cfg.Users.Login)

	expenses := api.Group("/expenses", cfg.AuthMiddleware.Handle)
	expenses.Post("/", cfg.Expenses.Create)
	expenses.Get("/", cfg.Expenses.ListMine)
	expenses.Get("/all", auth.RequireAdmin(), cfg.Expenses.ListAll)

	admin := expenses.Group("/admin/analytics", auth.RequireAdmin())
	admin.Get("/category-totals", cfg.Analytics.CategoryTotals)
	admin.Get("/users", cfg.Analytics.UserTotals)

	expenses.Put("/:id", cfg.Expenses.Update)
	expenses.Delete("/:id", cfg.Expenses.Delete)
}
