package gratitude

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/config"
	"github.com/moodsync/moodsync-backend/internal/middleware"
	"github.com/moodsync/moodsync-backend/internal/services"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for the gratitude journal.
type Plugin struct {
	moderationService *services.ModerationService
}

func New(moderationService *services.ModerationService) *Plugin {
	return &Plugin{moderationService: moderationService}
}

func (p *Plugin) ID() string { return "gratitude" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Entry{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db, p.moderationService)
	handler := NewHandler(svc)

	router.Post("/gratitude/add", middleware.GuestGate(cfg), handler.Add)
	router.Get("/gratitude/entries", handler.List)
	router.Delete("/gratitude/delete/:id", middleware.GuestGate(cfg), handler.Delete)
}
