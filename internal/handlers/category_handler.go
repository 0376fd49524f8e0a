package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type CategoryHandler struct {
	Svc *marketplace.Service
}

func NewCategoryHandler(svc *marketplace.Service) *CategoryHandler {
	return &CategoryHandler{Svc: svc}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Svc.Categories(),
	})
}
