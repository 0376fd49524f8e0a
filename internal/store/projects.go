package store

import (
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

type Projects struct {
	*Table[models.ProjectID, models.Project]
}

// Create stores p as a new open project.
func (p Projects) Create(project models.Project) models.Project {
	return p.Insert(func(id models.ProjectID, createdAt time.Time) models.Project {
		project.ID = id
		project.CreatedAt = createdAt
		project.Status = models.ProjectOpen
		return project
	})
}

func (p Projects) All() []models.Project {
	return p.Find(nil)
}

func (p Projects) ByClient(clientID models.UserID) []models.Project {
	return p.Find(func(x models.Project) bool { return x.ClientID == clientID })
}

func (p Projects) ByCategory(category models.Category) []models.Project {
	return p.Find(func(x models.Project) bool { return x.Category == category })
}
