package mood

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/config"
	"github.com/moodsync/moodsync-backend/internal/middleware"
	"github.com/moodsync/moodsync-backend/internal/services"
	"gorm.io/gorm"
)

// Plugin implements the apps.Plugin interface for mood check-ins.
type Plugin struct {
	guidanceService   *services.GuidanceService
	moderationService *services.ModerationService
}

func New(guidanceService *services.GuidanceService, moderationService *services.ModerationService) *Plugin {
	return &Plugin{guidanceService: guidanceService, moderationService: moderationService}
}

func (p *Plugin) ID() string { return "mood" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Entry{},
	}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewService(db, p.guidanceService, p.moderationService)
	handler := NewHandler(svc)

	router.Post("/mood/submit", middleware.GuestGate(cfg), handler.Submit)
	router.Get("/mood/history", handler.History)
	router.Get("/mood/trends", handler.Trends)
	router.Get("/mood/trigger-insights", handler.TriggerInsights)
	router.Get("/mood/trigger-heatmap", handler.TriggerHeatmap)
}
