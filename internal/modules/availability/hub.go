package availability

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client pairs a connection with its write lock. gorilla/websocket allows at
// most one concurrent writer per connection, and both the monitor ticker and
// the manual refresh endpoint can broadcast at the same time.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(message interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteJSON(message)
}

// Hub fans published snapshots out to connected dashboard clients.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[conn] = &client{conn: conn}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.clients[conn]; exists {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// Send writes the message to a single registered connection, serialized
// against any concurrent Broadcast to the same connection.
func (h *Hub) Send(conn *websocket.Conn, message interface{}) error {
	h.mutex.RLock()
	c, exists := h.clients[conn]
	h.mutex.RUnlock()

	if !exists {
		return websocket.ErrCloseSent
	}
	return c.write(message)
}

// Broadcast writes the message to every client, dropping connections that
// fail to take the write.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mutex.RUnlock()

	for _, c := range clients {
		if err := c.write(message); err != nil {
			h.Unregister(c.conn)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
