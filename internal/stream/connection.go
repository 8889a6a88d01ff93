// Package stream broadcasts rendered frames to websocket clients.
package stream

import (
	"log"

	"github.com/gorilla/websocket"
)

type message struct {
	kind int
	data []byte
}

// Connection wraps a websocket with a buffered outgoing queue.
type Connection struct {
	ws   *websocket.Conn
	send chan message
}

// NewConnection creates a new connection wrapper.
func NewConnection(ws *websocket.Conn, buffer int) *Connection {
	if buffer <= 0 {
		buffer = 16
	}
	return &Connection{ws: ws, send: make(chan message, buffer)}
}

// ReadPump drains and discards client messages until the socket closes. The
// stream is one-way; reading is only needed to notice disconnects.
func (c *Connection) ReadPump() {
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("stream: read error: %v", err)
			}
			return
		}
	}
}

// WritePump writes queued messages until the queue is closed.
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for msg := range c.send {
		w, err := c.ws.NextWriter(msg.kind)
		if err != nil {
			return
		}
		if _, err := w.Write(msg.data); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}
