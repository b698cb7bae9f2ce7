package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/dsikarwar-ops/expense-tracker/pkg/util"
)

// RequireAdmin ensures the authenticated caller holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || !principal.IsAdmin() {
			return apperrors.NewForbidden("Access denied. Admins only.")
		}
		return c.Next()
	}
}
