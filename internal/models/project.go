package models

import "time"

type ProjectID int64

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	// ProjectCompleted and ProjectCancelled have no triggering operation yet.
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID          ProjectID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Budget      Money         `json:"budget"`
	Deadline    Date          `json:"deadline"`
	Category    Category      `json:"category"`
	ClientID    UserID        `json:"client_id"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (p Project) IsOpen() bool { return p.Status == ProjectOpen }
