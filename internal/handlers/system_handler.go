package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/models"
	"gorm.io/gorm"
)

// SystemHandler exposes the admin-only system log query surface.
type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Logs handles GET /api/admin/logs
func (h *SystemHandler) Logs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	query := h.db.Model(&models.SystemLog{}).Order("timestamp DESC").Limit(limit)
	if level := strings.ToUpper(c.Query("level")); level != "" {
		query = query.Where("level = ?", level)
	}

	var logs []models.SystemLog
	if err := query.Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch logs",
		})
	}

	return c.JSON(fiber.Map{"data": logs, "limit": limit})
}
