// internal/models/chat.go
package models

import "time"

type MessageID int64

// Message is immutable once stored.
type Message struct {
	ID         MessageID  `json:"id"`
	SenderID   UserID     `json:"sender_id"`
	ReceiverID UserID     `json:"receiver_id"`
	ProjectID  *ProjectID `json:"project_id,omitempty"`
	Content    string     `json:"content"`
	// Read is recorded on creation and not consulted by any query.
	Read      bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Counterpart returns the other participant from the point of view of self.
func (m Message) Counterpart(self UserID) UserID {
	if m.SenderID == self {
		return m.ReceiverID
	}
	return m.SenderID
}

// Between reports whether the message was exchanged by a and b, in either direction.
func (m Message) Between(a, b UserID) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}
