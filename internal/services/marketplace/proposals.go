package marketplace

import (
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/store"
)

type ProposalInput struct {
	CoverLetter  string
	Price        models.Money
	DeliveryTime string
}

// SubmitProposal records a pending proposal from the calling freelancer. The
// project must be open and the freelancer must not have proposed on it
// before, whatever became of that earlier proposal.
func (s *Service) SubmitProposal(a Actor, projectID models.ProjectID, in ProposalInput) (models.Proposal, error) {
	freelancer, err := s.freelancer(a)
	if err != nil {
		return models.Proposal{}, err
	}

	var created models.Proposal
	err = s.workflow.Workflow(func(tx *store.Tx) error {
		project, ok := tx.Project(projectID)
		if !ok {
			return ErrNotFound
		}
		if !project.IsOpen() {
			return ErrProjectNotOpen
		}
		for _, p := range tx.ProposalsByProject(projectID) {
			if p.FreelancerID == freelancer.ID {
				return ErrDuplicateProposal
			}
		}

		created = tx.InsertProposal(models.Proposal{
			ProjectID:    projectID,
			FreelancerID: freelancer.ID,
			CoverLetter:  in.CoverLetter,
			Price:        in.Price,
			DeliveryTime: in.DeliveryTime,
		})
		return nil
	})
	if err != nil {
		return models.Proposal{}, err
	}

	s.log.Info("proposal submitted", "proposal_id", created.ID, "project_id", projectID, "freelancer_id", freelancer.ID)
	return created, nil
}

type ProjectProposals struct {
	Project     models.Project
	Proposals   []models.Proposal
	Freelancers map[models.UserID]models.User
}

// ProjectProposals lists the proposals on a project owned by the caller.
func (s *Service) ProjectProposals(a Actor, projectID models.ProjectID) (ProjectProposals, error) {
	client, err := s.client(a)
	if err != nil {
		return ProjectProposals{}, err
	}
	project, ok := s.projects.Get(projectID)
	if !ok || project.ClientID != client.ID {
		return ProjectProposals{}, ErrNotFound
	}

	proposals := s.proposals.ByProject(projectID)
	return ProjectProposals{
		Project:     project,
		Proposals:   proposals,
		Freelancers: s.freelancersOf(proposals),
	}, nil
}

type Acceptance struct {
	Project  models.Project
	Accepted models.Proposal
	// Rejected holds every other proposal on the project after the change.
	Rejected []models.Proposal
}

// AcceptProposal accepts one proposal, moves its project to in_progress and
// rejects every sibling proposal, in one step.
func (s *Service) AcceptProposal(a Actor, proposalID models.ProposalID) (Acceptance, error) {
	client, err := s.client(a)
	if err != nil {
		return Acceptance{}, err
	}

	var out Acceptance
	err = s.workflow.Workflow(func(tx *store.Tx) error {
		proposal, project, err := ownedProposal(tx, client.ID, proposalID)
		if err != nil {
			return err
		}

		out.Accepted, _ = tx.SetProposalStatus(proposal.ID, models.ProposalAccepted)
		out.Project, _ = tx.SetProjectStatus(project.ID, models.ProjectInProgress)
		for _, sibling := range tx.ProposalsByProject(project.ID) {
			if sibling.ID == proposal.ID {
				continue
			}
			rejected, _ := tx.SetProposalStatus(sibling.ID, models.ProposalRejected)
			out.Rejected = append(out.Rejected, rejected)
		}
		return nil
	})
	if err != nil {
		return Acceptance{}, err
	}

	s.log.Info("proposal accepted",
		"proposal_id", proposalID,
		"project_id", out.Project.ID,
		"rejected", len(out.Rejected),
	)
	return out, nil
}

// RejectProposal rejects one proposal and touches nothing else. Rejecting an
// accepted proposal leaves its project in_progress.
// TODO: decide with product whether that case should reopen the project.
func (s *Service) RejectProposal(a Actor, proposalID models.ProposalID) (models.Proposal, error) {
	client, err := s.client(a)
	if err != nil {
		return models.Proposal{}, err
	}

	var rejected models.Proposal
	err = s.workflow.Workflow(func(tx *store.Tx) error {
		proposal, _, err := ownedProposal(tx, client.ID, proposalID)
		if err != nil {
			return err
		}
		if proposal.Status == models.ProposalAccepted {
			s.log.Warn("rejecting an accepted proposal, project status unchanged",
				"proposal_id", proposal.ID, "project_id", proposal.ProjectID)
		}
		rejected, _ = tx.SetProposalStatus(proposal.ID, models.ProposalRejected)
		return nil
	})
	if err != nil {
		return models.Proposal{}, err
	}

	s.log.Info("proposal rejected", "proposal_id", rejected.ID, "project_id", rejected.ProjectID)
	return rejected, nil
}

func ownedProposal(tx *store.Tx, clientID models.UserID, id models.ProposalID) (models.Proposal, models.Project, error) {
	proposal, ok := tx.Proposal(id)
	if !ok {
		return models.Proposal{}, models.Project{}, ErrNotFound
	}
	project, ok := tx.Project(proposal.ProjectID)
	if !ok || project.ClientID != clientID {
		return models.Proposal{}, models.Project{}, ErrNotFound
	}
	return proposal, project, nil
}
