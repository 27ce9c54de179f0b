package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin rejects non-admin actors. It must run after AuthRequired.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := GetActor(c)
		if err != nil {
			return err
		}
		if !actor.Admin {
			return Forbidden("Insufficient permissions for this operation")
		}
		return c.Next()
	}
}
