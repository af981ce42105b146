// Package websocket provides the live update feed dashboards subscribe to.
// file: websocket/connection.go
package websocket

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"go-ultimate-hub/logger"
)

// WSConn is an interface for the WebSocket connection.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Connection represents a single WebSocket connection for one client.
// eventID 0 means the client receives every message.
type Connection struct {
	conn    WSConn
	send    chan []byte
	hub     *Hub
	eventID int
}

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBuffer     = 64
)

// ClientMessage is what clients may send over the feed.
type ClientMessage struct {
	Action  string `json:"action"`
	EventID int    `json:"eventId"`
}

// ServeWs upgrades the HTTP request to a WebSocket connection and starts the read and write
// pumps. An optional eventId query parameter limits the feed to one event.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	eventID := 0
	if raw := r.URL.Query().Get("eventId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			logger.Warn.Printf("[ServeWs] Rejecting feed with invalid eventId=%q", raw)
			http.Error(w, "invalid eventId", http.StatusBadRequest)
			return
		}
		eventID = id
	}

	logger.Info.Printf("[ServeWs] Upgrading to WS: remoteAddr=%v, eventId=%d", r.RemoteAddr, eventID)
	wsConn, err := h.upgrader().Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		logger.Error.Printf("[ServeWs] WebSocket upgrade error: %v", err)
		return
	}

	c := &Connection{
		conn:    wsConn,
		send:    make(chan []byte, sendBuffer),
		hub:     h,
		eventID: eventID,
	}
	h.register(c)

	go c.readPump()
	go c.writePump()
}

// readPump handles inbound messages from the client.
func (c *Connection) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			logger.Debug.Printf("[readPump] Read error from %v: %v", c.conn.RemoteAddr(), err)
			break
		}
		if messageType != websocket.TextMessage {
			logger.Debug.Printf("[readPump] Ignoring non-text messageType=%d", messageType)
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Warn.Printf("[readPump] Invalid JSON from %v: %v", c.conn.RemoteAddr(), err)
			continue
		}
		c.handleIncoming(msg)
	}
}

// writePump handles outbound messages to the client, including periodic pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				logger.Debug.Printf("[writePump] Send channel closed for %v", c.conn.RemoteAddr())
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn.Printf("[writePump] Error writing to %v: %v", c.conn.RemoteAddr(), err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Warn.Printf("[writePump] Ping error for %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		}
	}
}

// handleIncoming processes an inbound client message.
func (c *Connection) handleIncoming(msg ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.EventID < 0 {
			return
		}
		c.hub.setFilter(c, msg.EventID)
		logger.Debug.Printf("[handleIncoming] %v subscribed to eventId=%d", c.conn.RemoteAddr(), msg.EventID)
		c.hub.reply(c, mustJSON(map[string]interface{}{"action": "subscribed", "eventId": msg.EventID}))
	case "ping":
		c.hub.reply(c, mustJSON(map[string]interface{}{"action": "pong"}))
	default:
		logger.Debug.Printf("[handleIncoming] Unhandled action: %s", msg.Action)
	}
}

// enqueue drops the message when the client is too slow to keep up. Callers hold the hub lock.
func (c *Connection) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
		logger.Warn.Printf("[enqueue] Dropping message for connection %v", c.conn.RemoteAddr())
	}
}

func mustJSON(v interface{}) []byte {
	out, err := json.Marshal(v)
	if err != nil {
		logger.Error.Printf("[mustJSON] Error marshalling message: %v", err)
		return []byte(`{}`)
	}
	return out
}
