package marketplace

import "github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"

type PortfolioInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    models.Category
}

func (s *Service) AddPortfolioItem(a Actor, in PortfolioInput) (models.PortfolioItem, error) {
	freelancer, err := s.freelancer(a)
	if err != nil {
		return models.PortfolioItem{}, err
	}
	if !in.Category.Valid() {
		return models.PortfolioItem{}, invalid("unknown category")
	}

	item := s.portfolio.Create(models.PortfolioItem{
		FreelancerID: freelancer.ID,
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Category:     in.Category,
	})
	s.log.Info("portfolio item added", "item_id", item.ID, "freelancer_id", freelancer.ID)
	return item, nil
}

func (s *Service) MyPortfolio(a Actor) ([]models.PortfolioItem, error) {
	freelancer, err := s.freelancer(a)
	if err != nil {
		return nil, err
	}
	return s.portfolio.ByFreelancer(freelancer.ID), nil
}

// PortfolioOf shows a freelancer's work to any signed-in user.
func (s *Service) PortfolioOf(a Actor, freelancerID models.UserID) (models.User, []models.PortfolioItem, error) {
	if _, err := s.caller(a); err != nil {
		return models.User{}, nil, err
	}
	u, ok := s.users.Get(freelancerID)
	if !ok || u.Role != models.RoleFreelancer {
		return models.User{}, nil, ErrNotFound
	}
	return u, s.portfolio.ByFreelancer(u.ID), nil
}
