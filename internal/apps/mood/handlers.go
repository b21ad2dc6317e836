package mood

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/identity"
)

// Handler handles HTTP requests for mood check-ins.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/mood/submit
func (h *Handler) Submit(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	entry, err := h.service.Submit(userID, req)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to save mood entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// History handles GET /api/mood/history
func (h *Handler) History(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	limit, _ := strconv.Atoi(c.Query("limit", "30"))
	if limit <= 0 {
		limit = 30
	}
	if limit > 100 {
		limit = 100
	}

	entries, err := h.service.History(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch history",
		})
	}

	return c.JSON(entries)
}

// Trends handles GET /api/mood/trends
func (h *Handler) Trends(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	days, err := strconv.Atoi(c.Query("days", "14"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "days must be a number",
		})
	}

	points, err := h.service.Trends(userID, days)
	if err != nil {
		if errors.Is(err, ErrInvalidDays) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to compute trends",
		})
	}

	return c.JSON(points)
}

// TriggerInsights handles GET /api/mood/trigger-insights
func (h *Handler) TriggerInsights(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	insights, err := h.service.TriggerInsights(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to compute trigger insights",
		})
	}

	return c.JSON(insights)
}

// TriggerHeatmap handles GET /api/mood/trigger-heatmap
func (h *Handler) TriggerHeatmap(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	heatmap, err := h.service.TriggerHeatmap(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to build trigger heatmap",
		})
	}

	return c.JSON(heatmap)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmotion) ||
		errors.Is(err, ErrInvalidOverthinking) ||
		errors.Is(err, ErrLevelOutOfRange)
}
