package store

import (
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

type Proposals struct {
	*Table[models.ProposalID, models.Proposal]
}

func newProposal(p models.Proposal) func(models.ProposalID, time.Time) models.Proposal {
	return func(id models.ProposalID, createdAt time.Time) models.Proposal {
		p.ID = id
		p.CreatedAt = createdAt
		p.Status = models.ProposalPending
		return p
	}
}

func (p Proposals) ByProject(projectID models.ProjectID) []models.Proposal {
	return p.Find(func(x models.Proposal) bool { return x.ProjectID == projectID })
}

func (p Proposals) ByFreelancer(freelancerID models.UserID) []models.Proposal {
	return p.Find(func(x models.Proposal) bool { return x.FreelancerID == freelancerID })
}
