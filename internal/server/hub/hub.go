// Package hub fans live collection snapshots out to watch subscribers.
package hub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 10 * time.Second

// Hub tracks watch connections per collection and broadcasts snapshot
// payloads to them.
type Hub struct {
	logger *slog.Logger
	mu     sync.RWMutex
	subs   map[string]map[*websocket.Conn]struct{}
}

// New creates an empty hub.
func New(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Register adds a connection to a collection's subscriber set.
func (h *Hub) Register(collection string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[*websocket.Conn]struct{})
	}
	h.subs[collection][conn] = struct{}{}
}

// Unregister removes a connection. Safe to call for connections that
// were never registered.
func (h *Hub) Unregister(collection string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[collection], conn)
	if len(h.subs[collection]) == 0 {
		delete(h.subs, collection)
	}
}

// Broadcast sends payload to every subscriber of the collection.
// Connections that fail to accept the write are dropped.
func (h *Hub) Broadcast(ctx context.Context, collection string, payload []byte) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subs[collection]))
	for conn := range h.subs[collection] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := conn.Write(writeCtx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			h.logger.Debug("hub: dropping slow or closed subscriber",
				"collection", collection, "error", err)
			h.Unregister(collection, conn)
			_ = conn.Close(websocket.StatusGoingAway, "write failed")
		}
	}
}

// SubscriberCount reports the number of live subscribers for a
// collection.
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[collection])
}

// CloseAll terminates every connection, for server shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for collection, conns := range h.subs {
		for conn := range conns {
			_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		}
		delete(h.subs, collection)
	}
}
