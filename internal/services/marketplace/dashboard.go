package marketplace

import "github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"

type ClientDashboard struct {
	User     models.User
	Projects []models.Project
}

func (s *Service) ClientDashboard(a Actor) (ClientDashboard, error) {
	client, err := s.Me(a)
	if err != nil {
		return ClientDashboard{}, err
	}
	projects, err := s.ClientProjects(a)
	if err != nil {
		return ClientDashboard{}, err
	}
	return ClientDashboard{User: client, Projects: projects}, nil
}

type FreelancerDashboard struct {
	User      models.User
	Proposals []models.Proposal
	// Projects is keyed by the project each proposal targets.
	Projects  map[models.ProjectID]models.Project
	Portfolio []models.PortfolioItem
}

func (s *Service) FreelancerDashboard(a Actor) (FreelancerDashboard, error) {
	freelancer, err := s.freelancer(a)
	if err != nil {
		return FreelancerDashboard{}, err
	}

	proposals := s.proposals.ByFreelancer(freelancer.ID)
	projects := make(map[models.ProjectID]models.Project, len(proposals))
	for _, p := range proposals {
		if project, ok := s.projects.Get(p.ProjectID); ok {
			projects[project.ID] = project
		}
	}

	return FreelancerDashboard{
		User:      freelancer,
		Proposals: proposals,
		Projects:  projects,
		Portfolio: s.portfolio.ByFreelancer(freelancer.ID),
	}, nil
}
