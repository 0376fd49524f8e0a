package models

import "time"

type ProposalID int64

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

type Proposal struct {
	ID           ProposalID     `json:"id"`
	ProjectID    ProjectID      `json:"project_id"`
	FreelancerID UserID         `json:"freelancer_id"`
	CoverLetter  string         `json:"cover_letter"`
	Price        Money          `json:"price"`
	DeliveryTime string         `json:"delivery_time"` // free text, e.g. "5 days"
	Status       ProposalStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}
