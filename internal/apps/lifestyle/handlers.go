package lifestyle

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/identity"
)

// Handler handles HTTP requests for lifestyle assessments.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Assess handles POST /api/lifestyle/assess
func (h *Handler) Assess(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	var req AssessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	assessment, err := h.service.Assess(userID, req)
	if err != nil {
		if errors.Is(err, ErrScoreOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to save assessment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(assessment)
}

// History handles GET /api/lifestyle/history
func (h *Handler) History(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	assessments, err := h.service.History(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch assessment history",
		})
	}

	return c.JSON(assessments)
}
