// Package websocket file: websocket/hub.go
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/services"
)

// Hub fans store notifications out to every live feed connection.
type Hub struct {
	mu          sync.RWMutex
	connections map[*Connection]bool

	broadcast chan []byte
	done      chan struct{}
	stopOnce  sync.Once

	// AllowedOrigins limits browser origins; empty allows all.
	AllowedOrigins []string
	// OnConnectionsChanged observes the connection count after every change.
	OnConnectionsChanged func(count int)
}

// Ensure Hub implements services.Notifier
var _ services.Notifier = (*Hub)(nil)

// NewHub builds a hub. Call Run to start delivering messages.
func NewHub() *Hub {
	return &Hub{
		connections: make(map[*Connection]bool),
		broadcast:   make(chan []byte, 256),
		done:        make(chan struct{}),
	}
}

// Run distributes broadcast messages until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case msg := <-h.broadcast:
			h.deliver(msg)
		case <-h.done:
			return
		}
	}
}

// Stop ends Run and closes every connection's send channel.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.mu.Lock()
		for c := range h.connections {
			close(c.send)
			delete(h.connections, c)
		}
		h.mu.Unlock()
		h.connectionsChanged(0)
	})
}

// Notify publishes a state change to the feed. It never blocks; messages are dropped when the
// broadcast queue is full.
func (h *Hub) Notify(action string, payload map[string]interface{}) {
	msg := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		msg[k] = v
	}
	msg["action"] = action

	out, err := json.Marshal(msg)
	if err != nil {
		logger.Error.Printf("[Notify] Error marshalling %s message: %v", action, err)
		return
	}

	select {
	case h.broadcast <- out:
	case <-h.done:
	default:
		logger.Warn.Printf("[Notify] Broadcast queue full; dropping %s", action)
	}
}

// Count returns the number of live connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// deliver sends msg to every connection whose event filter matches. Messages without an
// eventId go to everyone.
func (h *Hub) deliver(msg []byte) {
	var envelope struct {
		EventID *int `json:"eventId"`
	}
	_ = json.Unmarshal(msg, &envelope)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		if envelope.EventID != nil && c.eventID != 0 && c.eventID != *envelope.EventID {
			continue
		}
		c.enqueue(msg)
	}
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	h.connections[c] = true
	n := len(h.connections)
	h.mu.Unlock()
	logger.Info.Printf("[register] Connection %v added (%d live)", c.conn.RemoteAddr(), n)
	h.connectionsChanged(n)
}

func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	if _, ok := h.connections[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.connections, c)
	close(c.send)
	n := len(h.connections)
	h.mu.Unlock()
	logger.Info.Printf("[unregister] Connection %v removed (%d live)", c.conn.RemoteAddr(), n)
	h.connectionsChanged(n)
}

// reply sends msg to c alone, if c is still registered.
func (h *Hub) reply(c *Connection, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.connections[c] {
		c.enqueue(msg)
	}
}

func (h *Hub) setFilter(c *Connection, eventID int) {
	h.mu.Lock()
	c.eventID = eventID
	h.mu.Unlock()
}

func (h *Hub) connectionsChanged(n int) {
	if h.OnConnectionsChanged != nil {
		h.OnConnectionsChanged(n)
	}
}

func (h *Hub) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(h.AllowedOrigins) == 0 {
				return true
			}
			for _, allowed := range h.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
}
