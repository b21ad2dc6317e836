package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/moodsync/moodsync-backend/internal/apps"
	"github.com/moodsync/moodsync-backend/internal/config"
	"github.com/moodsync/moodsync-backend/internal/handlers"
	"github.com/moodsync/moodsync-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	healthHandler *handlers.HealthHandler,
	resourceHandler *handlers.ResourceHandler,
	systemHandler *handlers.SystemHandler,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no identity required)
	api.Get("/health", healthHandler.Check)

	// Wellness resource catalog (public)
	api.Get("/resources", resourceHandler.List)

	// Admin surface (X-Admin-Token gated)
	admin := api.Group("/admin", middleware.AdminRequired(cfg))
	admin.Get("/logs", systemHandler.Logs)

	// Feature routes (identity middleware already applied globally)
	for _, p := range plugins {
		p.RegisterRoutes(api, db, cfg)
	}
}
