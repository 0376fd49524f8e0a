package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type ProjectHandler struct {
	Svc *marketplace.Service
	Log *slog.Logger
}

func NewProjectHandler(svc *marketplace.Service, log *slog.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Log: log}
}

type CreateProjectReq struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"required,min=30,max=2000"`
	Category    string     `json:"category" validate:"required"`
	Budget      flexString `json:"budget" validate:"required"`
	Deadline    string     `json:"deadline" validate:"required"` // 2006-01-02
}

func (h *ProjectHandler) Featured(c *fiber.Ctx) error {
	return success(c, fiber.StatusOK, "", fiber.Map{
		"projects":   h.Svc.FeaturedProjects(),
		"categories": h.Svc.Categories(),
	})
}

// Browse lists open projects, optionally narrowed by ?category=.
func (h *ProjectHandler) Browse(c *fiber.Ctx) error {
	category := c.Query("category")
	return success(c, fiber.StatusOK, "", fiber.Map{
		"projects":          h.Svc.BrowseOpenProjects(category),
		"categories":        h.Svc.Categories(),
		"selected_category": category,
	})
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req CreateProjectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	errs := validateReq(&req)
	category, err := models.ParseCategory(req.Category)
	if err != nil && !errs.Has("category") {
		errs.Add("category", "Choose one of the listed categories")
	}
	budget, err := models.ParseMoney(string(req.Budget))
	if err != nil && !errs.Has("budget") {
		errs.Add("budget", "Budget must be a positive amount")
	}
	deadline, err := models.ParseDate(req.Deadline)
	if err != nil && !errs.Has("deadline") {
		errs.Add("deadline", "Deadline must be a date in YYYY-MM-DD format")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	project, err := h.Svc.PostProject(actorOf(c), marketplace.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      budget,
		Deadline:    deadline,
		Category:    category,
	})
	if err != nil {
		return fail(c, h.Log, err)
	}
	return success(c, fiber.StatusCreated, "Your project has been posted successfully!", project)
}

func (h *ProjectHandler) Show(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.Svc.ViewProject(actorOf(c), models.ProjectID(id))
	if err != nil {
		return fail(c, h.Log, err)
	}

	data := fiber.Map{
		"project":     view.Project,
		"client":      view.Client,
		"can_propose": view.CanPropose,
	}
	if view.Freelancers != nil {
		data["proposals"] = view.Proposals
		data["freelancers"] = view.Freelancers
	}
	return success(c, fiber.StatusOK, "", data)
}

// Proposals is the owning client's review page for one project.
func (h *ProjectHandler) Proposals(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.Svc.ProjectProposals(actorOf(c), models.ProjectID(id))
	if err != nil {
		return fail(c, h.Log, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{
		"project":     view.Project,
		"proposals":   view.Proposals,
		"freelancers": view.Freelancers,
	})
}
