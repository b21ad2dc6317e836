package gratitude

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodsync/moodsync-backend/internal/identity"
)

// Handler handles HTTP requests for the gratitude journal.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Add handles POST /api/gratitude/add
func (h *Handler) Add(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request body",
		})
	}

	entry, err := h.service.Add(userID, req)
	if err != nil {
		if errors.Is(err, ErrEmptyContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to save gratitude entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List handles GET /api/gratitude/entries
func (h *Handler) List(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	entries, err := h.service.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to fetch gratitude entries",
		})
	}

	return c.JSON(entries)
}

// Delete handles DELETE /api/gratitude/delete/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	userID := identity.CallerID(c)

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid entry ID",
		})
	}

	if err := h.service.Delete(userID, entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": "Failed to delete gratitude entry",
		})
	}

	return c.JSON(fiber.Map{"message": "Entry deleted"})
}
