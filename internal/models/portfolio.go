package models

import "time"

type PortfolioItemID int64

type PortfolioItem struct {
	ID           PortfolioItemID `json:"id"`
	FreelancerID UserID          `json:"freelancer_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"image_url"`
	Category     Category        `json:"category"`
	CreatedAt    time.Time       `json:"created_at"`
}
