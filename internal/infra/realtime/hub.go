// Package realtime pushes newly sent messages to connected websocket clients.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"handloom/internal/domain/entity"
	"handloom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxInboundSize = 512
	sendBuffer     = 32
)

// EventMessage is the frame type for a newly sent message.
const EventMessage = "message"

// Event is the JSON frame written to stream clients.
type Event struct {
	Type string          `json:"type"`
	Data *entity.Message `json:"data"`
}

// ConnectionObserver is notified when stream clients come and go.
type ConnectionObserver interface {
	StreamConnected()
	StreamDisconnected()
}

type client struct {
	userID    uuid.UUID
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
	done      chan struct{}
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Hub tracks open connections per user. A user may hold several at once.
type Hub struct {
	mu       sync.RWMutex
	clients  map[uuid.UUID]map[*client]struct{}
	logger   *slog.Logger
	observer ConnectionObserver
}

// NewHub creates an empty hub. observer may be nil.
func NewHub(logger *slog.Logger, observer ConnectionObserver) *Hub {
	return &Hub{
		clients:  make(map[uuid.UUID]map[*client]struct{}),
		logger:   logger,
		observer: observer,
	}
}

// NewBroadcaster exposes the hub to use cases.
func NewBroadcaster(hub *Hub) service.MessageBroadcaster {
	return hub
}

// ConnectionCount reports how many connections a user currently holds.
func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	conns, ok := h.clients[c.userID]
	if !ok {
		conns = make(map[*client]struct{})
		h.clients[c.userID] = conns
	}
	conns[c] = struct{}{}
	h.mu.Unlock()

	if h.observer != nil {
		h.observer.StreamConnected()
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	conns, ok := h.clients[c.userID]
	_, present := conns[c]
	if ok && present {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()

	c.close()
	if present && h.observer != nil {
		h.observer.StreamDisconnected()
	}
}

// Serve owns conn until the client disconnects or ctx is cancelled. It blocks.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, userID uuid.UUID) {
	c := &client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	h.register(c)

	h.logger.Debug("Stream client connected", slog.String("user_id", userID.String()))

	go h.writePump(ctx, c)
	h.readPump(c)

	h.unregister(c)
	h.logger.Debug("Stream client disconnected", slog.String("user_id", userID.String()))
}

// readPump only services control frames; clients do not send messages over the stream.
func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Stream read failed", slog.Any("error", err))
			}

			return
		}
	}
}

func (h *Hub) writePump(ctx context.Context, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))

			return
		case <-ctx.Done():
			return
		}
	}
}

// Broadcast queues msg for every open connection of the recipients.
// A connection whose buffer is full is dropped instead of blocking the sender.
func (h *Hub) Broadcast(_ context.Context, msg *entity.Message, recipients []uuid.UUID) error {
	payload, err := json.Marshal(Event{Type: EventMessage, Data: msg})
	if err != nil {
		return errors.Wrap(err, "failed to encode stream event")
	}

	var slow []*client

	h.mu.RLock()
	for _, userID := range recipients {
		for c := range h.clients[userID] {
			select {
			case c.send <- payload:
			case <-c.done:
			default:
				slow = append(slow, c)
			}
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow stream client", slog.String("user_id", c.userID.String()))
		h.unregister(c)
	}

	return nil
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.RLock()
	all := make([]*client, 0)
	for _, conns := range h.clients {
		for c := range conns {
			all = append(all, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range all {
		h.unregister(c)
	}
}
