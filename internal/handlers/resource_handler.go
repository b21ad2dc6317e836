package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodsync/moodsync-backend/internal/catalog"
)

type ResourceHandler struct {
	catalog *catalog.Catalog
}

func NewResourceHandler(cat *catalog.Catalog) *ResourceHandler {
	return &ResourceHandler{catalog: cat}
}

// List handles GET /api/resources. An optional category query narrows the set.
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")

	var resources []catalog.Resource
	if category != "" {
		resources = h.catalog.ByCategory(category)
	} else {
		resources = h.catalog.All()
	}

	return c.JSON(fiber.Map{"resources": resources})
}
