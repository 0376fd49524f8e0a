package handlers

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/realtime"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
)

type ChatHandler struct {
	Svc    *marketplace.Service
	Hub    *realtime.Hub
	Notify realtime.Publisher
	Log    *slog.Logger
}

func NewChatHandler(svc *marketplace.Service, hub *realtime.Hub, notify realtime.Publisher, log *slog.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Hub: hub, Notify: notify, Log: log}
}

type SendMessageReq struct {
	ReceiverID flexString `json:"receiver_id" validate:"required,numeric"`
	ProjectID  flexString `json:"project_id" validate:"omitempty,numeric"`
	Content    string     `json:"content" validate:"required,max=1000"`
}

// SendMessage stores a message and pushes it to both participants.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req SendMessageReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request",
		})
	}

	req.Content = strings.TrimSpace(req.Content)

	errs := validateReq(&req)
	receiverID, err := strconv.ParseInt(string(req.ReceiverID), 10, 64)
	if (err != nil || receiverID <= 0) && !errs.Has("receiver_id") {
		errs.Add("receiver_id", "Receiver is required")
	}
	projectID, err := optionalProjectID(string(req.ProjectID))
	if err != nil && !errs.Has("project_id") {
		errs.Add("project_id", "Invalid project")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	msg, err := h.Svc.SendMessage(actorOf(c), marketplace.MessageInput{
		ReceiverID: models.UserID(receiverID),
		ProjectID:  projectID,
		Content:    req.Content,
	})
	if err != nil {
		return fail(c, h.Log, err)
	}

	ev := realtime.Event{Type: realtime.EventNewMessage, Data: msg}
	ctx := context.Background()
	h.Notify.Publish(ctx, msg.SenderID, ev)
	if msg.ReceiverID != msg.SenderID {
		h.Notify.Publish(ctx, msg.ReceiverID, ev)
	}

	return success(c, fiber.StatusCreated, "Message sent", msg)
}

// Inbox lists the caller's conversation partners, most recent first.
func (h *ChatHandler) Inbox(c *fiber.Ctx) error {
	entries, err := h.Svc.Inbox(actorOf(c))
	if err != nil {
		return fail(c, h.Log, err)
	}

	out := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, fiber.Map{
			"partner":      e.Partner,
			"last_message": e.LastMessage,
		})
	}
	return success(c, fiber.StatusOK, "", out)
}

// Conversation returns the exchange with :userId, optionally scoped to
// ?project_id=.
func (h *ChatHandler) Conversation(c *fiber.Ctx) error {
	other, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	projectID, err := optionalProjectID(c.Query("project_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid project_id")
	}

	conv, err := h.Svc.Conversation(actorOf(c), models.UserID(other), projectID)
	if err != nil {
		return fail(c, h.Log, err)
	}
	return success(c, fiber.StatusOK, "", fiber.Map{
		"other_user": conv.Other,
		"messages":   conv.Messages,
	})
}

// RequireUpgrade only lets signed-in websocket upgrade requests through.
func RequireUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !actorOf(c).Authenticated() {
			return fiber.ErrUnauthorized
		}
		return c.Next()
	}
}

// WebSocketHandler registers the connection with the hub and writes every
// event addressed to its user until either side hangs up.
func (h *ChatHandler) WebSocketHandler(c *websocket.Conn) {
	userID, ok := c.Locals("userId").(models.UserID)
	if !ok {
		_ = c.Close()
		return
	}

	client := &realtime.Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Conn:   realtime.NewWebSocketConn(c),
		Send:   make(chan []byte, 256),
	}

	h.Hub.RegisterClient(client)
	h.Log.Debug("websocket connected", "user_id", userID, "client_id", client.ID)
	defer func() {
		h.Hub.UnregisterClient(client)
		h.Log.Debug("websocket disconnected", "user_id", userID, "client_id", client.ID)
	}()

	go func() {
		if err := client.Conn.Pump(client.Send); err != nil {
			h.Log.Warn("websocket write", "client_id", client.ID, "err", err)
		}
	}()

	// Client frames only keep the connection alive.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
