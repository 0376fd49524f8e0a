package store

import (
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

type Messages struct {
	*Table[models.MessageID, models.Message]
}

func (m Messages) Create(msg models.Message) models.Message {
	return m.Insert(func(id models.MessageID, createdAt time.Time) models.Message {
		msg.ID = id
		msg.CreatedAt = createdAt
		msg.Read = false
		if msg.ProjectID != nil {
			pid := *msg.ProjectID
			msg.ProjectID = &pid
		}
		return msg
	})
}

// ByParticipant returns every message userID sent or received.
func (m Messages) ByParticipant(userID models.UserID) []models.Message {
	return m.Find(func(x models.Message) bool {
		return x.SenderID == userID || x.ReceiverID == userID
	})
}

// Conversation returns the messages exchanged between a and b. A non-nil
// projectID restricts the result to messages tagged with that project.
func (m Messages) Conversation(a, b models.UserID, projectID *models.ProjectID) []models.Message {
	return m.Find(func(x models.Message) bool {
		if !x.Between(a, b) {
			return false
		}
		if projectID == nil {
			return true
		}
		return x.ProjectID != nil && *x.ProjectID == *projectID
	})
}
