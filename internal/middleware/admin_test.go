package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRequired(t *testing.T) {
	newApp := func(configuredToken string) *fiber.App {
		app := fiber.New()
		app.Get("/api/admin/logs", AdminRequired(&config.Config{AdminToken: configuredToken}), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	t.Run("disabled when no token configured", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/logs", nil)
		req.Header.Set("X-Admin-Token", "anything")
		resp, err := newApp("").Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/logs", nil)
		req.Header.Set("X-Admin-Token", "wrong")
		resp, err := newApp("secret").Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		resp, err := newApp("secret").Test(httptest.NewRequest("GET", "/api/admin/logs", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("correct token accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/logs", nil)
		req.Header.Set("X-Admin-Token", "secret")
		resp, err := newApp("secret").Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
