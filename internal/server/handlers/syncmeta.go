package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/officesync/internal/server/storage"
	"github.com/iudanet/officesync/pkg/api"
)

// SyncMetaHandler handles per-device sync bookkeeping.
type SyncMetaHandler struct {
	logger  *slog.Logger
	storage storage.SyncMarkStorage
}

// NewSyncMetaHandler creates the sync metadata handler.
func NewSyncMetaHandler(logger *slog.Logger, markStorage storage.SyncMarkStorage) *SyncMetaHandler {
	return &SyncMetaHandler{
		logger:  logger,
		storage: markStorage,
	}
}

// Put handles PUT /api/v1/sync_metadata/{deviceId}.
func (h *SyncMetaHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID := r.PathValue("deviceId")
	if deviceID == "" {
		sendError(w, h.logger, "device id is required", http.StatusBadRequest)
		return
	}

	var req api.SyncMark
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, h.logger, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.LastSync.IsZero() {
		sendError(w, h.logger, "last_sync is required", http.StatusBadRequest)
		return
	}

	mark := &storage.SyncMark{DeviceID: deviceID, LastSync: req.LastSync}
	if err := h.storage.PutSyncMark(ctx, mark); err != nil {
		h.logger.ErrorContext(ctx, "failed to put sync mark", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /api/v1/sync_metadata/{deviceId}.
func (h *SyncMetaHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID := r.PathValue("deviceId")
	if deviceID == "" {
		sendError(w, h.logger, "device id is required", http.StatusBadRequest)
		return
	}

	mark, err := h.storage.GetSyncMark(ctx, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrSyncMarkNotFound) {
			sendError(w, h.logger, "device has never synced", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get sync mark", slog.Any("error", err))
		sendError(w, h.logger, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.SyncMark{DeviceID: mark.DeviceID, LastSync: mark.LastSync}
	sendJSON(w, h.logger, resp, http.StatusOK)
}
