package lifestyle

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/config"
	"github.com/moodsync/moodsync-backend/internal/middleware"
	"github.com/moodsync/moodsync-backend/internal/services"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for lifestyle assessments.
type Plugin struct {
	moderationService *services.ModerationService
}

func New(moderationService *services.ModerationService) *Plugin {
	return &Plugin{moderationService: moderationService}
}

func (p *Plugin) ID() string { return "lifestyle" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Assessment{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db, p.moderationService)
	handler := NewHandler(svc)

	router.Post("/lifestyle/assess", middleware.GuestGate(cfg), handler.Assess)
	router.Get("/lifestyle/history", handler.History)
}
