package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/service"
)

// userLocalsKey is where the authenticated user is stored for
// downstream ownership checks.
const userLocalsKey = "current_user"

// RequireAuth validates the bearer token on protected routes, resolves
// it to a user and attaches the user to the request context.
func RequireAuth(auth *service.AuthService) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, err := bearerToken(c.Get("Authorization"))
		if err != nil {
			slog.Warn("authorization header invalid", "error", err, "path", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		user, err := auth.Authorize(c.Context(), token)
		if err != nil {
			slog.Warn("token validation failed", "error", err, "path", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth,
// or nil on unprotected routes.
func CurrentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid Authorization header format, expected 'Bearer <token>'")
	}
	return parts[1], nil
}
