package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type PortfolioHandler struct {
	Svc *marketplace.Service
	Log *slog.Logger
}

func NewPortfolioHandler(svc *marketplace.Service, log *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{Svc: svc, Log: log}
}

type PortfolioItemReq struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	ImageURL    string `json:"image_url" validate:"required,http_url"`
	Category    string `json:"category" validate:"required"`
}

func (h *PortfolioHandler) ListMine(c *fiber.Ctx) error {
	items, err := h.Svc.MyPortfolio(actorOf(c))
	if err != nil {
		return fail(c, h.Log, err)
	}
	return success(c, fiber.StatusOK, "", items)
}

func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	var req PortfolioItemReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.ImageURL = strings.TrimSpace(req.ImageURL)

	errs := validateReq(&req)
	category, err := models.ParseCategory(req.Category)
	if err != nil && !errs.Has("category") {
		errs.Add("category", "Choose one of the listed categories")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	item, err := h.Svc.AddPortfolioItem(actorOf(c), marketplace.PortfolioInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    category,
	})
	if err != nil {
		return fail(c, h.Log, err)
	}
	return success(c, fiber.StatusCreated, "Portfolio item added successfully!", item)
}

// Show is the public-to-members portfolio page of freelancer :freelancerId.
func (h *PortfolioHandler) Show(c *fiber.Ctx) error {
	id, err := paramID(c, "freelancerId")
	if err != nil {
		return err
	}

	freelancer, items, err := h.Svc.PortfolioOf(actorOf(c), models.UserID(id))
	if err != nil {
		return fail(c, h.Log, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{
		"freelancer": freelancer,
		"items":      items,
	})
}
