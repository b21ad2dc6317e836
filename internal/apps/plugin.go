package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every feature area must implement.
type Plugin interface {
	// ID returns the unique feature identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts feature-specific routes on the given Fiber group.
	// The group is already prefixed with /api and has identity middleware applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
