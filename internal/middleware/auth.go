package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"blogsphere/internal/domain"
	"blogsphere/internal/pkg/logger"
	"blogsphere/internal/service/auth"
)

const ActorContextKey = "actor"

func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		actor, err := authService.ResolveActor(c.Context(), parts[1])
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return Unauthorized("Invalid or expired token")
			}
			return err
		}

		c.Locals(ActorContextKey, actor)
		c.Locals(logger.UserIDKey, actor.ID)

		return c.Next()
	}
}

func GetActor(c *fiber.Ctx) (domain.Actor, error) {
	actor, ok := c.Locals(ActorContextKey).(domain.Actor)
	if !ok || actor.ID == uuid.Nil {
		return domain.Actor{}, Unauthorized("User not authenticated")
	}
	return actor, nil
}
