package marketplace

import (
	"fmt"
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

// SeedSampleData creates a demo client, freelancer, project, proposal and
// portfolio item. It does nothing once any user exists and reports whether
// it wrote anything. Concurrent calls run one at a time.
func (s *Service) SeedSampleData(now time.Time) (bool, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if s.users.Len() > 0 {
		return false, nil
	}

	client, err := s.Register(RegisterInput{
		Username: "sampleclient",
		Email:    "client@example.com",
		Password: "password",
		Role:     models.RoleClient,
	})
	if err != nil {
		return false, fmt.Errorf("seed client: %w", err)
	}
	freelancer, err := s.Register(RegisterInput{
		Username: "samplefreelancer",
		Email:    "freelancer@example.com",
		Password: "password",
		Role:     models.RoleFreelancer,
	})
	if err != nil {
		return false, fmt.Errorf("seed freelancer: %w", err)
	}

	clientActor := Actor{UserID: client.ID, Role: client.Role}
	freelancerActor := Actor{UserID: freelancer.ID, Role: freelancer.Role}

	project, err := s.PostProject(clientActor, ProjectInput{
		Title:       "Logo Design for Tech Startup",
		Description: "We need a modern, minimalistic logo for our new tech startup. The logo should reflect innovation and reliability.",
		Budget:      300_00,
		Deadline:    models.DateOf(now),
		Category:    models.CategoryLogoDesign,
	})
	if err != nil {
		return false, fmt.Errorf("seed project: %w", err)
	}

	if _, err := s.SubmitProposal(freelancerActor, project.ID, ProposalInput{
		CoverLetter:  "I have 5+ years of experience in logo design and would love to work with you on this project.",
		Price:        250_00,
		DeliveryTime: "5 days",
	}); err != nil {
		return false, fmt.Errorf("seed proposal: %w", err)
	}

	if _, err := s.AddPortfolioItem(freelancerActor, PortfolioInput{
		Title:       "Modern Restaurant Logo",
		Description: "A clean, modern logo design for a high-end restaurant.",
		ImageURL:    "https://images.unsplash.com/photo-1498677231914-50deb6ba4217",
		Category:    models.CategoryLogoDesign,
	}); err != nil {
		return false, fmt.Errorf("seed portfolio: %w", err)
	}

	s.log.Info("sample data created")
	return true, nil
}
