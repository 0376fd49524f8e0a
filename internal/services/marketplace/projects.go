package marketplace

import (
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

const featuredProjectCount = 4

type ProjectInput struct {
	Title       string
	Description string
	Budget      models.Money
	Deadline    models.Date
	Category    models.Category
}

// PostProject opens a new project owned by the calling client.
func (s *Service) PostProject(a Actor, in ProjectInput) (models.Project, error) {
	client, err := s.client(a)
	if err != nil {
		return models.Project{}, err
	}
	if !in.Category.Valid() {
		return models.Project{}, invalid("unknown category")
	}

	p := s.projects.Create(models.Project{
		Title:       in.Title,
		Description: in.Description,
		Budget:      in.Budget,
		Deadline:    in.Deadline,
		Category:    in.Category,
		ClientID:    client.ID,
	})
	s.log.Info("project posted", "project_id", p.ID, "client_id", client.ID)
	return p, nil
}

// ClientProjects lists every project the caller has posted, whatever its status.
func (s *Service) ClientProjects(a Actor) ([]models.Project, error) {
	client, err := s.client(a)
	if err != nil {
		return nil, err
	}
	return s.projects.ByClient(client.ID), nil
}

// FeaturedProjects is the anonymous landing view.
func (s *Service) FeaturedProjects() []models.Project {
	all := s.projects.All()
	if len(all) > featuredProjectCount {
		all = all[:featuredProjectCount]
	}
	return all
}

// BrowseOpenProjects lists open projects, narrowed to category when it is a
// known one. Unknown or empty categories list every open project.
func (s *Service) BrowseOpenProjects(category string) []models.Project {
	var projects []models.Project
	if c := models.Category(category); c.Valid() {
		projects = s.projects.ByCategory(c)
	} else {
		projects = s.projects.All()
	}

	open := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsOpen() {
			open = append(open, p)
		}
	}
	return open
}

type ProjectView struct {
	Project models.Project
	Client  models.User
	// Proposals and Freelancers are only filled for the owning client.
	Proposals   []models.Proposal
	Freelancers map[models.UserID]models.User
	// CanPropose is true for a freelancer with no proposal on the project yet.
	CanPropose bool
}

func (s *Service) ViewProject(a Actor, id models.ProjectID) (ProjectView, error) {
	viewer, err := s.caller(a)
	if err != nil {
		return ProjectView{}, err
	}
	p, ok := s.projects.Get(id)
	if !ok {
		return ProjectView{}, ErrNotFound
	}

	view := ProjectView{Project: p}
	view.Client, _ = s.users.Get(p.ClientID)

	switch viewer.Role {
	case models.RoleFreelancer:
		view.CanPropose = !s.hasProposed(viewer.ID, p.ID)
	case models.RoleClient:
		if p.ClientID == viewer.ID {
			view.Proposals = s.proposals.ByProject(p.ID)
			view.Freelancers = s.freelancersOf(view.Proposals)
		}
	default:
		return ProjectView{}, ErrForbidden
	}
	return view, nil
}

func (s *Service) hasProposed(freelancerID models.UserID, projectID models.ProjectID) bool {
	for _, p := range s.proposals.ByFreelancer(freelancerID) {
		if p.ProjectID == projectID {
			return true
		}
	}
	return false
}

func (s *Service) freelancersOf(proposals []models.Proposal) map[models.UserID]models.User {
	out := make(map[models.UserID]models.User, len(proposals))
	for _, p := range proposals {
		if u, ok := s.users.Get(p.FreelancerID); ok {
			out[u.ID] = u
		}
	}
	return out
}
