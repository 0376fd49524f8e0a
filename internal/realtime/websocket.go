package realtime

import (
	"time"

	"github.com/gofiber/websocket/v2"
)

const writeWait = 10 * time.Second

// WebSocketConn is the write side of one browser connection.
type WebSocketConn struct {
	Conn *websocket.Conn
}

func NewWebSocketConn(c *websocket.Conn) *WebSocketConn {
	return &WebSocketConn{Conn: c}
}

// Pump writes every payload from send until the channel closes or a write
// fails. It must be the only writer on the connection.
func (w *WebSocketConn) Pump(send <-chan []byte) error {
	for payload := range send {
		if err := w.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		if err := w.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return err
		}
	}
	return nil
}
