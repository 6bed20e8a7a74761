package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/officesync/internal/models"
	"github.com/iudanet/officesync/internal/server/hub"
	"github.com/iudanet/officesync/internal/server/storage"
	"github.com/iudanet/officesync/pkg/api"
)

// CollectionsHandler handles mirrored record reads and writes.
type CollectionsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
	hub     *hub.Hub
}

// NewCollectionsHandler creates the collections handler.
func NewCollectionsHandler(logger *slog.Logger, recordStorage storage.RecordStorage, h *hub.Hub) *CollectionsHandler {
	return &CollectionsHandler{
		logger:  logger,
		storage: recordStorage,
		hub:     h,
	}
}

// Put handles PUT /api/v1/collections/{collection}/{id}. Last writer
// wins: the stored document is replaced unconditionally.
func (h *CollectionsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection, ok := h.collectionName(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		sendError(w, h.logger, "record id is required", http.StatusBadRequest)
		return
	}

	var req api.WriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode write request", slog.Any("error", err))
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Data) == 0 {
		sendError(w, h.logger, "data is required", http.StatusBadRequest)
		return
	}

	rec := &storage.StoredRecord{
		Collection:   collection,
		ID:           id,
		Data:         req.Data,
		LastModified: time.Now().UTC(),
		DeviceID:     req.DeviceID,
	}
	if err := h.storage.UpsertRecord(ctx, rec); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert record",
			slog.String("collection", collection), slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "record written",
		slog.String("collection", collection),
		slog.String("record_id", id),
		slog.String("device_id", req.DeviceID))

	h.broadcastSnapshot(ctx, collection)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/collections/{collection}/{id}.
func (h *CollectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection, ok := h.collectionName(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		sendError(w, h.logger, "record id is required", http.StatusBadRequest)
		return
	}

	removed, err := h.storage.DeleteRecord(ctx, collection, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete record",
			slog.String("collection", collection), slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}
	if !removed {
		sendError(w, h.logger, "record not found", http.StatusNotFound)
		return
	}

	h.logger.InfoContext(ctx, "record deleted",
		slog.String("collection", collection),
		slog.String("record_id", id))

	h.broadcastSnapshot(ctx, collection)
	w.WriteHeader(http.StatusNoContent)
}

// GetCollection handles GET /api/v1/collections/{collection}. The
// response is always the full snapshot, never a diff.
func (h *CollectionsHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection, ok := h.collectionName(w, r)
	if !ok {
		return
	}

	snap, err := h.snapshot(ctx, collection)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read collection",
			slog.String("collection", collection), slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, snap, http.StatusOK)
}

func (h *CollectionsHandler) collectionName(w http.ResponseWriter, r *http.Request) (string, bool) {
	collection := r.PathValue("collection")
	if _, ok := models.LookupCollection(collection); !ok {
		sendError(w, h.logger, "unknown collection", http.StatusNotFound)
		return "", false
	}
	return collection, true
}

func (h *CollectionsHandler) snapshot(ctx context.Context, collection string) (*api.Snapshot, error) {
	records, err := h.storage.GetCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	return snapshotFromStored(collection, records), nil
}

func snapshotFromStored(collection string, records []storage.StoredRecord) *api.Snapshot {
	snap := &api.Snapshot{
		Collection: collection,
		Records:    make([]api.Envelope, 0, len(records)),
	}
	for _, rec := range records {
		snap.Records = append(snap.Records, api.Envelope{
			ID:           rec.ID,
			Data:         rec.Data,
			LastModified: rec.LastModified,
			DeviceID:     rec.DeviceID,
		})
	}
	return snap
}

// broadcastSnapshot pushes the collection's full contents to every
// watcher. Failures only cost liveness: watchers get the next snapshot
// or resubscribe.
func (h *CollectionsHandler) broadcastSnapshot(ctx context.Context, collection string) {
	if h.hub.SubscriberCount(collection) == 0 {
		return
	}
	snap, err := h.snapshot(ctx, collection)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build broadcast snapshot",
			slog.String("collection", collection), slog.Any("error", err))
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode broadcast snapshot", slog.Any("error", err))
		return
	}
	h.hub.Broadcast(ctx, collection, payload)
}
