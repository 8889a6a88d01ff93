package stream

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks connected clients and fans frames out to them.
type Hub struct {
	mutex   sync.Mutex
	clients map[*Connection]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Connection]struct{})}
}

// Add registers a client.
func (h *Hub) Add(c *Connection) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[c] = struct{}{}
}

// Remove unregisters a client and closes its queue, which ends its WritePump.
func (h *Hub) Remove(c *Connection) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.drop(c)
}

// drop must be called with the mutex held.
func (h *Hub) drop(c *Connection) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Len reports the number of connected clients.
func (h *Hub) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Broadcast queues a JSON header followed by the encoded frame for every
// client. Clients whose queue cannot take both messages are dropped.
func (h *Hub) Broadcast(header, frame []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for c := range h.clients {
		if cap(c.send)-len(c.send) < 2 {
			log.Printf("stream: dropping slow client")
			h.drop(c)
			continue
		}
		c.send <- message{kind: websocket.TextMessage, data: header}
		c.send <- message{kind: websocket.BinaryMessage, data: frame}
	}
}
