package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/utils"
)

// AttachJWTLocals turns verified claims into userId / role locals. Requests
// without claims pass through as anonymous.
func AttachJWTLocals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*utils.Claims)
		if !ok || claims == nil {
			return c.Next()
		}

		role, err := models.ParseRole(claims.Role)
		if err != nil || claims.UserID <= 0 {
			return fiber.ErrUnauthorized
		}

		c.Locals("userId", models.UserID(claims.UserID))
		c.Locals("role", role)
		return c.Next()
	}
}
