// Package marketplace holds the project, proposal, messaging and portfolio
// rules on top of the in-memory store. Every operation either applies all of
// its effects or leaves the store untouched.
package marketplace

import (
	"io"
	"log/slog"
	"sync"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/store"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/utils"
)

type UserRepository interface {
	Create(models.User) (models.User, error)
	Get(models.UserID) (models.User, bool)
	ByEmail(email string) (models.User, bool)
	Len() int
}

type ProjectRepository interface {
	Create(models.Project) models.Project
	Get(models.ProjectID) (models.Project, bool)
	All() []models.Project
	ByClient(models.UserID) []models.Project
	ByCategory(models.Category) []models.Project
}

type ProposalRepository interface {
	Get(models.ProposalID) (models.Proposal, bool)
	ByProject(models.ProjectID) []models.Proposal
	ByFreelancer(models.UserID) []models.Proposal
}

type MessageRepository interface {
	Create(models.Message) models.Message
	ByParticipant(models.UserID) []models.Message
	Conversation(a, b models.UserID, projectID *models.ProjectID) []models.Message
}

type PortfolioRepository interface {
	Create(models.PortfolioItem) models.PortfolioItem
	ByFreelancer(models.UserID) []models.PortfolioItem
}

// WorkflowRunner applies multi-record project/proposal changes atomically.
type WorkflowRunner interface {
	Workflow(fn func(tx *store.Tx) error) error
}

type Repositories struct {
	Users     UserRepository
	Projects  ProjectRepository
	Proposals ProposalRepository
	Messages  MessageRepository
	Portfolio PortfolioRepository
	Workflow  WorkflowRunner
}

func RepositoriesFrom(s *store.Store) Repositories {
	return Repositories{
		Users:     s.Users,
		Projects:  s.Projects,
		Proposals: s.Proposals,
		Messages:  s.Messages,
		Portfolio: s.Portfolio,
		Workflow:  s,
	}
}

type Service struct {
	users     UserRepository
	projects  ProjectRepository
	proposals ProposalRepository
	messages  MessageRepository
	portfolio PortfolioRepository
	workflow  WorkflowRunner

	hashPassword func(string) (string, error)
	log          *slog.Logger

	seedMu sync.Mutex
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithPasswordHasher replaces the bcrypt default; tests use a cheaper cost.
func WithPasswordHasher(fn func(string) (string, error)) Option {
	return func(s *Service) { s.hashPassword = fn }
}

func NewService(r Repositories, opts ...Option) *Service {
	s := &Service{
		users:        r.Users,
		projects:     r.Projects,
		proposals:    r.Proposals,
		messages:     r.Messages,
		portfolio:    r.Portfolio,
		workflow:     r.Workflow,
		hashPassword: utils.HashPassword,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories returns the fixed category list.
func (s *Service) Categories() []models.Category {
	return models.Categories()
}
