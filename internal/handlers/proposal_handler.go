package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/realtime"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type ProposalHandler struct {
	Svc    *marketplace.Service
	Notify realtime.Publisher
	Log    *slog.Logger
}

func NewProposalHandler(svc *marketplace.Service, notify realtime.Publisher, log *slog.Logger) *ProposalHandler {
	return &ProposalHandler{Svc: svc, Notify: notify, Log: log}
}

type SubmitProposalReq struct {
	CoverLetter  string     `json:"cover_letter" validate:"required,min=30,max=1000"`
	Price        flexString `json:"price" validate:"required"`
	DeliveryTime string     `json:"delivery_time" validate:"required,max=50"` // free text, e.g. "5 days"
}

// Submit records the calling freelancer's proposal on project :id and tells
// the project owner about it.
func (h *ProposalHandler) Submit(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req SubmitProposalReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	req.CoverLetter = strings.TrimSpace(req.CoverLetter)
	req.DeliveryTime = strings.TrimSpace(req.DeliveryTime)

	errs := validateReq(&req)
	price, err := models.ParseMoney(string(req.Price))
	if err != nil && !errs.Has("price") {
		errs.Add("price", "Price must be a positive amount")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	proposal, err := h.Svc.SubmitProposal(actorOf(c), models.ProjectID(id), marketplace.ProposalInput{
		CoverLetter:  req.CoverLetter,
		Price:        price,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		return fail(c, h.Log, err)
	}

	if view, err := h.Svc.ViewProject(actorOf(c), proposal.ProjectID); err == nil {
		h.Notify.Publish(context.Background(), view.Project.ClientID, realtime.Event{
			Type: realtime.EventProposalReceived,
			Data: proposal,
		})
	}

	return success(c, fiber.StatusCreated, "Your proposal has been submitted successfully!", proposal)
}

func (h *ProposalHandler) Accept(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.Svc.AcceptProposal(actorOf(c), models.ProposalID(id))
	if err != nil {
		return fail(c, h.Log, err)
	}

	ctx := context.Background()
	h.Notify.Publish(ctx, out.Accepted.FreelancerID, realtime.Event{Type: realtime.EventProposalStatus, Data: out.Accepted})
	for _, p := range out.Rejected {
		h.Notify.Publish(ctx, p.FreelancerID, realtime.Event{Type: realtime.EventProposalStatus, Data: p})
	}

	return success(c, fiber.StatusOK, "Proposal accepted! The project is now in progress.", fiber.Map{
		"project":  out.Project,
		"accepted": out.Accepted,
		"rejected": out.Rejected,
	})
}

func (h *ProposalHandler) Reject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	rejected, err := h.Svc.RejectProposal(actorOf(c), models.ProposalID(id))
	if err != nil {
		return fail(c, h.Log, err)
	}

	h.Notify.Publish(context.Background(), rejected.FreelancerID, realtime.Event{
		Type: realtime.EventProposalStatus,
		Data: rejected,
	})
	return success(c, fiber.StatusOK, "Proposal rejected.", rejected)
}
