package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type DashboardHandler struct {
	Svc *marketplace.Service
	Log *slog.Logger
}

func NewDashboardHandler(svc *marketplace.Service, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Log: log}
}

func (h *DashboardHandler) Client(c *fiber.Ctx) error {
	d, err := h.Svc.ClientDashboard(actorOf(c))
	if err != nil {
		return fail(c, h.Log, err)
	}

	open := 0
	for _, p := range d.Projects {
		if p.IsOpen() {
			open++
		}
	}

	return success(c, fiber.StatusOK, "", fiber.Map{
		"user":     d.User,
		"projects": d.Projects,
		"stats": fiber.Map{
			"total_projects": len(d.Projects),
			"open_projects":  open,
		},
	})
}

type proposalWithProject struct {
	models.Proposal
	Project *models.Project `json:"project,omitempty"`
}

func (h *DashboardHandler) Freelancer(c *fiber.Ctx) error {
	d, err := h.Svc.FreelancerDashboard(actorOf(c))
	if err != nil {
		return fail(c, h.Log, err)
	}

	accepted := 0
	proposals := make([]proposalWithProject, 0, len(d.Proposals))
	for _, p := range d.Proposals {
		row := proposalWithProject{Proposal: p}
		if project, ok := d.Projects[p.ProjectID]; ok {
			row.Project = &project
		}
		if p.Status == models.ProposalAccepted {
			accepted++
		}
		proposals = append(proposals, row)
	}

	return success(c, fiber.StatusOK, "", fiber.Map{
		"user":      d.User,
		"proposals": proposals,
		"portfolio": d.Portfolio,
		"stats": fiber.Map{
			"total_proposals":    len(d.Proposals),
			"accepted_proposals": accepted,
			"portfolio_items":    len(d.Portfolio),
		},
	})
}
