// internal/realtime/hub.go
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
)

// Event is the payload pushed to connected users.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const (
	EventNewMessage       = "new_message"
	EventProposalReceived = "proposal_received"
	EventProposalStatus   = "proposal_status"
)

// Publisher delivers an event to one user. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, userID models.UserID, ev Event)
}

type Client struct {
	ID     string
	UserID models.UserID
	Conn   *WebSocketConn
	Send   chan []byte
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// RegisterClient hands client to Run. Once Run has stopped, the client's
// Send channel is closed instead.
func (h *Hub) RegisterClient(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.Send)
	}
}

func (h *Hub) UnregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish sends ev to every connection of userID.
func (h *Hub) Publish(_ context.Context, userID models.UserID, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.Warn("marshal realtime event", "type", ev.Type, "err", err)
		return
	}
	h.SendToUser(userID, payload)
}

// SendToUser sends payload to every connection of userID, skipping
// connections whose buffer is full.
func (h *Hub) SendToUser(userID models.UserID, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.UserID != userID {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			h.log.Warn("realtime buffer full, dropping event", "client_id", client.ID, "user_id", userID)
		}
	}
}

// Connected reports how many connections userID currently has.
func (h *Hub) Connected(userID models.UserID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, client := range h.clients {
		if client.UserID == userID {
			n++
		}
	}
	return n
}

// Run serves register/unregister requests until ctx is done, then closes
// every remaining connection's send channel.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.log.Debug("realtime client registered", "client_id", client.ID, "user_id", client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.Send)
				h.log.Debug("realtime client unregistered", "client_id", client.ID)
			}
			h.mu.Unlock()

		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Fanout publishes to every wrapped publisher.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, userID models.UserID, ev Event) {
	for _, p := range f {
		p.Publish(ctx, userID, ev)
	}
}
