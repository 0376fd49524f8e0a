package store

import (
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

type Portfolio struct {
	*Table[models.PortfolioItemID, models.PortfolioItem]
}

func (p Portfolio) Create(item models.PortfolioItem) models.PortfolioItem {
	return p.Insert(func(id models.PortfolioItemID, createdAt time.Time) models.PortfolioItem {
		item.ID = id
		item.CreatedAt = createdAt
		return item
	})
}

func (p Portfolio) ByFreelancer(freelancerID models.UserID) []models.PortfolioItem {
	return p.Find(func(x models.PortfolioItem) bool { return x.FreelancerID == freelancerID })
}
