package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type SeedHandler struct {
	Svc *marketplace.Service
	Now func() time.Time
	Log *slog.Logger
}

func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	created, err := h.Svc.SeedSampleData(h.Now())
	if err != nil {
		return fail(c, h.Log, err)
	}
	if !created {
		return success(c, fiber.StatusOK, "Sample data already exists.", fiber.Map{"created": false})
	}
	return success(c, fiber.StatusCreated, "Sample data created successfully!", fiber.Map{"created": true})
}
