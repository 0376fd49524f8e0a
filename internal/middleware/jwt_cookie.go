package middleware

import (
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const TokenCookie = "jm_token"

// JWTFromCookie rejects requests without a valid session cookie.
func JWTFromCookie(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(TokenCookie)
		if tokenStr == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// OptionalJWTFromCookie attaches claims when a valid cookie is present and
// lets anonymous requests through otherwise.
func OptionalJWTFromCookie(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenStr := c.Cookies(TokenCookie); tokenStr != "" {
			if claims, err := utils.ParseJWT(secret, tokenStr); err == nil {
				c.Locals("claims", claims)
			}
		}
		return c.Next()
	}
}
