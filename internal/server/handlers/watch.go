package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/iudanet/officesync/internal/models"
	"github.com/iudanet/officesync/internal/server/hub"
	"github.com/iudanet/officesync/internal/server/storage"
)

// WatchHandler upgrades watch requests to WebSocket streams. Every
// subscriber receives the full collection on connect and again after
// every mutation.
type WatchHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
	hub     *hub.Hub
}

// NewWatchHandler creates the watch handler.
func NewWatchHandler(logger *slog.Logger, recordStorage storage.RecordStorage, h *hub.Hub) *WatchHandler {
	return &WatchHandler{
		logger:  logger,
		storage: recordStorage,
		hub:     h,
	}
}

// Watch handles GET /api/v1/collections/{collection}/watch.
func (h *WatchHandler) Watch(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")
	if _, ok := models.LookupCollection(collection); !ok {
		sendError(w, h.logger, "unknown collection", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // same-origin is not meaningful for CLI clients
	})
	if err != nil {
		h.logger.Warn("watch: websocket accept failed", slog.Any("error", err))
		return
	}

	ctx := r.Context()

	// Register before the initial snapshot so a mutation landing in
	// that window still reaches this subscriber. Concurrent writes on
	// the connection are safe.
	h.hub.Register(collection, conn)

	if err := h.sendSnapshot(ctx, conn, collection); err != nil {
		h.logger.Warn("watch: initial snapshot failed",
			slog.String("collection", collection), slog.Any("error", err))
		h.hub.Unregister(collection, conn)
		_ = conn.Close(websocket.StatusInternalError, "snapshot failed")
		return
	}
	h.logger.Info("watch subscriber connected", slog.String("collection", collection))

	// Block reading until the client goes away; subscribers never send
	// anything meaningful.
	h.readLoop(ctx, conn)

	h.hub.Unregister(collection, conn)
	_ = conn.Close(websocket.StatusNormalClosure, "")
	h.logger.Info("watch subscriber disconnected", slog.String("collection", collection))
}

func (h *WatchHandler) sendSnapshot(ctx context.Context, conn *websocket.Conn, collection string) error {
	records, err := h.storage.GetCollection(ctx, collection)
	if err != nil {
		return err
	}
	snap := snapshotFromStored(collection, records)
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, payload)
}

func (h *WatchHandler) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}
