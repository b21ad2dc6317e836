package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodsync/moodsync-backend/internal/config"
	"github.com/moodsync/moodsync-backend/internal/dto"
	"github.com/moodsync/moodsync-backend/internal/identity"
)

// Paths that don't carry a caller identity.
var identitySkipPaths = []string{
	"/api/health",
	"/api/resources",
	"/api/admin/", // admin routes authenticate via X-Admin-Token instead
}

// Identity resolves the caller from the X-User-Id header. A missing header
// marks the request as a guest and maps it onto the anonymous bucket; a
// malformed header is rejected.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		for _, skip := range identitySkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		raw := c.Get("X-User-Id")
		if raw == "" {
			c.Locals("user_id", identity.AnonymousID)
			c.Locals("is_guest", true)
			return c.Next()
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Invalid X-User-Id: " + raw,
			})
		}

		c.Locals("user_id", userID)
		c.Locals("is_guest", false)
		return c.Next()
	}
}

// GuestGate rejects guest requests on write routes when guest persistence
// is disabled.
func GuestGate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identity.IsGuest(c) && !cfg.AllowGuestEntries() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Sign in to save entries",
			})
		}
		return c.Next()
	}
}
