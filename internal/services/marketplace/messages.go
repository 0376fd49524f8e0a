package marketplace

import (
	"cmp"
	"slices"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

type MessageInput struct {
	ReceiverID models.UserID
	ProjectID  *models.ProjectID
	Content    string
}

// SendMessage stores a message from the caller. The receiver, and the
// project when one is given, must exist.
func (s *Service) SendMessage(a Actor, in MessageInput) (models.Message, error) {
	sender, err := s.caller(a)
	if err != nil {
		return models.Message{}, err
	}
	if _, ok := s.users.Get(in.ReceiverID); !ok {
		return models.Message{}, ErrNotFound
	}
	if in.ProjectID != nil {
		if _, ok := s.projects.Get(*in.ProjectID); !ok {
			return models.Message{}, ErrNotFound
		}
	}

	msg := s.messages.Create(models.Message{
		SenderID:   sender.ID,
		ReceiverID: in.ReceiverID,
		ProjectID:  in.ProjectID,
		Content:    in.Content,
	})
	s.log.Debug("message sent", "message_id", msg.ID, "sender_id", sender.ID, "receiver_id", in.ReceiverID)
	return msg, nil
}

type Conversation struct {
	Other    models.User
	Messages []models.Message
}

// Conversation returns the caller's exchange with other, oldest first.
func (s *Service) Conversation(a Actor, other models.UserID, projectID *models.ProjectID) (Conversation, error) {
	me, err := s.caller(a)
	if err != nil {
		return Conversation{}, err
	}
	otherUser, ok := s.users.Get(other)
	if !ok {
		return Conversation{}, ErrNotFound
	}

	msgs := s.messages.Conversation(me.ID, other, projectID)
	sortChronological(msgs)
	return Conversation{Other: otherUser, Messages: msgs}, nil
}

type InboxEntry struct {
	Partner     models.User
	LastMessage models.Message
}

// Inbox lists one entry per conversation partner, most recent first.
func (s *Service) Inbox(a Actor) ([]InboxEntry, error) {
	me, err := s.caller(a)
	if err != nil {
		return nil, err
	}

	latest := map[models.UserID]models.Message{}
	for _, m := range s.messages.ByParticipant(me.ID) {
		other := m.Counterpart(me.ID)
		if prev, ok := latest[other]; !ok || chronological(prev, m) < 0 {
			latest[other] = m
		}
	}

	out := make([]InboxEntry, 0, len(latest))
	for partnerID, m := range latest {
		partner, ok := s.users.Get(partnerID)
		if !ok {
			continue
		}
		out = append(out, InboxEntry{Partner: partner, LastMessage: m})
	}
	slices.SortFunc(out, func(x, y InboxEntry) int {
		return chronological(y.LastMessage, x.LastMessage)
	})
	return out, nil
}

func chronological(x, y models.Message) int {
	if c := x.CreatedAt.Compare(y.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(x.ID, y.ID)
}

func sortChronological(msgs []models.Message) {
	slices.SortFunc(msgs, chronological)
}
