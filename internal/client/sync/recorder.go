package sync

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/officesync/internal/client/storage"
)

// Recorder turns local store changes into queued operations. It
// implements storage.ChangeNotifier and is attached to the store after
// both sides are constructed, breaking the store/queue cycle.
type Recorder struct {
	queue    *Queue
	logger   *slog.Logger
	wake     func()
	deviceID string
}

// NewRecorder builds a recorder stamping operations with deviceID. wake
// is invoked after every successful enqueue to prod the orchestrator;
// it may be nil.
func NewRecorder(queue *Queue, deviceID string, wake func(), logger *slog.Logger) *Recorder {
	return &Recorder{
		queue:    queue,
		logger:   logger,
		wake:     wake,
		deviceID: deviceID,
	}
}

// RecordChanged appends an operation for the change. Local writes never
// fail because of the queue: enqueue errors are logged and swallowed.
func (r *Recorder) RecordChanged(ctx context.Context, change storage.ChangeType, collection, id string, data json.RawMessage) {
	op := Operation{
		ID:         uuid.NewString(),
		Type:       opTypeFor(change),
		Collection: collection,
		Data:       data,
		Timestamp:  time.Now().UTC(),
		DeviceID:   r.deviceID,
	}
	if err := r.queue.Enqueue(ctx, op); err != nil {
		r.logger.Error("recorder: enqueue failed, change will not propagate",
			"collection", collection, "record_id", id, "error", err)
		return
	}
	if r.wake != nil {
		r.wake()
	}
}

func opTypeFor(change storage.ChangeType) OpType {
	switch change {
	case storage.ChangeCreate:
		return OpCreate
	case storage.ChangeUpdate:
		return OpUpdate
	case storage.ChangeDelete:
		return OpDelete
	default:
		return OpUpdate
	}
}
