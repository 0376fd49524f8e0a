package store

import (
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

// Store owns one table per entity type.
type Store struct {
	Users     Users
	Projects  Projects
	Proposals Proposals
	Messages  Messages
	Portfolio Portfolio
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the creation-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New(opts ...Option) *Store {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		Users:     Users{NewTable[models.UserID, models.User](o.now)},
		Projects:  Projects{NewTable[models.ProjectID, models.Project](o.now)},
		Proposals: Proposals{NewTable[models.ProposalID, models.Proposal](o.now)},
		Messages:  Messages{NewTable[models.MessageID, models.Message](o.now)},
		Portfolio: Portfolio{NewTable[models.PortfolioItemID, models.PortfolioItem](o.now)},
	}
}

// Workflow runs fn while holding the project and proposal write locks, so
// readers never see a half-applied status transition. fn must finish every
// check before its first write; a returned error is passed through as is.
func (s *Store) Workflow(fn func(tx *Tx) error) error {
	s.Projects.mu.Lock()
	defer s.Projects.mu.Unlock()
	s.Proposals.mu.Lock()
	defer s.Proposals.mu.Unlock()

	return fn(&Tx{projects: s.Projects.Table, proposals: s.Proposals.Table})
}

// Tx is the unlocked view of projects and proposals handed to Workflow.
// It must not escape the callback.
type Tx struct {
	projects  *Table[models.ProjectID, models.Project]
	proposals *Table[models.ProposalID, models.Proposal]
}

func (tx *Tx) Project(id models.ProjectID) (models.Project, bool) {
	p, ok := tx.projects.rows[id]
	return p, ok
}

func (tx *Tx) SetProjectStatus(id models.ProjectID, status models.ProjectStatus) (models.Project, bool) {
	return tx.projects.updateLocked(id, func(p *models.Project) { p.Status = status })
}

func (tx *Tx) Proposal(id models.ProposalID) (models.Proposal, bool) {
	p, ok := tx.proposals.rows[id]
	return p, ok
}

func (tx *Tx) ProposalsByProject(projectID models.ProjectID) []models.Proposal {
	return tx.proposals.findLocked(func(x models.Proposal) bool { return x.ProjectID == projectID })
}

func (tx *Tx) SetProposalStatus(id models.ProposalID, status models.ProposalStatus) (models.Proposal, bool) {
	return tx.proposals.updateLocked(id, func(p *models.Proposal) { p.Status = status })
}

func (tx *Tx) InsertProposal(p models.Proposal) models.Proposal {
	return tx.proposals.insertLocked(newProposal(p))
}
