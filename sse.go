package mcp

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tmaxmax/go-sse"
)

// eventWriter is the subset of *sse.Session the hub writes through.
type eventWriter interface {
	Send(m *sse.Message) error
	Flush() error
}

// connection is one open SSE stream. Writes from the heartbeat loop and from Broadcast are
// serialized through the connection's mutex because the underlying session is not safe for
// concurrent senders.
type connection struct {
	id string

	mu            sync.Mutex
	w             eventWriter
	lastHeartbeat time.Time
}

func (c *connection) sendEvent(eventType, data string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := &sse.Message{
		Type: sse.Type(eventType),
	}
	msg.AppendData(data)
	if err := c.w.Send(msg); err != nil {
		return err
	}
	return c.w.Flush()
}

func (c *connection) touch() {
	c.mu.Lock()
	c.lastHeartbeat = time.Now()
	c.mu.Unlock()
}

// Hub owns the set of open SSE connections. It registers a stream after its handshake frame is
// written, drives the per-connection heartbeat, and fans broadcast messages out to every live
// stream, pruning the ones whose writes fail.
type Hub struct {
	pingInterval time.Duration
	logger       *slog.Logger

	mu    sync.Mutex
	conns map[string]*connection
}

func newHub(pingInterval time.Duration, logger *slog.Logger) *Hub {
	return &Hub{
		pingInterval: pingInterval,
		logger:       logger,
		conns:        make(map[string]*connection),
	}
}

// Len reports the number of currently registered connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) add(c *connection) {
	h.mu.Lock()
	h.conns[c.id] = c
	h.mu.Unlock()
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

// Broadcast serializes payload once and writes it to every registered connection as a "message"
// event. Writes are independent: a failure on one connection never blocks delivery to the
// others. Failed connections are collected during the iteration and removed from the set only
// after every connection has been attempted.
func (h *Hub) Broadcast(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast payload: %w", err)
	}

	h.mu.Lock()
	conns := make([]*connection, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	var failed []string
	for _, c := range conns {
		if err := c.sendEvent("message", string(data)); err != nil {
			h.logger.Warn("failed to broadcast to connection",
				slog.String("connectionID", c.id),
				slog.String("err", err.Error()))
			failed = append(failed, c.id)
		}
	}

	h.mu.Lock()
	for _, id := range failed {
		delete(h.conns, id)
	}
	h.mu.Unlock()

	return nil
}

// serveStream upgrades the request to an SSE stream and keeps it open until the client
// disconnects or a write fails. The first frame is always the "connected" handshake; after that
// the loop emits a "ping" frame every pingInterval. There is no retry on write failure and no
// maximum connection lifetime.
func (h *Hub) serveStream(w http.ResponseWriter, r *http.Request) {
	sess, err := sse.Upgrade(w, r)
	if err != nil {
		h.logger.Error("failed to upgrade SSE session", slog.String("err", err.Error()))
		http.Error(w, fmt.Sprintf("failed to upgrade session: %s", err), http.StatusInternalServerError)
		return
	}

	conn := &connection{
		id:            uuid.New().String(),
		w:             sess,
		lastHeartbeat: time.Now(),
	}

	if err := conn.sendEvent("connected", `{"type":"connected"}`); err != nil {
		h.logger.Warn("failed to write connected event", slog.String("err", err.Error()))
		return
	}

	h.add(conn)
	defer h.remove(conn.id)

	h.logger.Debug("SSE connection opened", slog.String("connectionID", conn.id))

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Debug("SSE connection closed by client", slog.String("connectionID", conn.id))
			return
		case <-ticker.C:
			if err := conn.sendEvent("ping", `{"type":"ping"}`); err != nil {
				h.logger.Warn("heartbeat write failed, closing stream",
					slog.String("connectionID", conn.id),
					slog.String("err", err.Error()))
				return
			}
			conn.touch()
		}
	}
}
