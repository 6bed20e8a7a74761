package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/officesync/internal/client/storage"
)

//go:generate moq -out sink_mock.go . RemoteSink

// RemoteSink receives drained operations. Implemented by the mirror
// client; mocked in tests.
type RemoteSink interface {
	Write(ctx context.Context, collection, id string, data json.RawMessage) error
	Delete(ctx context.Context, collection, id string) error
}

// Queue is the persisted FIFO of pending operations. Every mutation of
// the in-memory slice is flushed to storage before the method returns,
// so a crash never loses acknowledged local writes.
type Queue struct {
	store  storage.QueueStorage
	logger *slog.Logger

	// drainMu serializes drain rounds; mu guards the slice. Separate so
	// Enqueue and Clear stay callable while a round is in flight.
	drainMu sync.Mutex
	mu      sync.Mutex
	ops     []Operation
}

// NewQueue loads the persisted queue, if any.
func NewQueue(ctx context.Context, store storage.QueueStorage, logger *slog.Logger) (*Queue, error) {
	q := &Queue{
		store:  store,
		logger: logger,
	}
	blob, err := store.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &q.ops); err != nil {
			return nil, fmt.Errorf("decode queue: %w", err)
		}
	}
	return q, nil
}

// Enqueue appends op and persists the whole queue.
func (q *Queue) Enqueue(ctx context.Context, op Operation) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.ops = append(q.ops, op)
	if err := q.persistLocked(ctx); err != nil {
		q.ops = q.ops[:len(q.ops)-1]
		return err
	}
	return nil
}

// Len reports the number of pending operations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops)
}

// Snapshot returns a copy of the pending operations in order.
func (q *Queue) Snapshot() []Operation {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Operation, len(q.ops))
	copy(out, q.ops)
	return out
}

// Clear drops all pending operations. Used by forced resyncs.
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops = nil
	return q.persistLocked(ctx)
}

// Drain sends pending operations to sink in order. Rounds are
// serialized: a Drain that starts while another is running waits its
// turn. Each success removes the head and persists the shrunken queue.
// On the first failure the round stops: the failed operation stays at
// the head and everything behind it keeps its position, so per-record
// ordering is preserved. Returns the number of operations delivered;
// malformed operations are dropped from the queue without counting.
func (q *Queue) Drain(ctx context.Context, sink RemoteSink) (int, error) {
	q.drainMu.Lock()
	defer q.drainMu.Unlock()

	sent := 0
	for {
		q.mu.Lock()
		if len(q.ops) == 0 {
			q.mu.Unlock()
			return sent, nil
		}
		op := q.ops[0]
		q.mu.Unlock()

		delivered, err := q.apply(ctx, sink, op)
		if err != nil {
			return sent, fmt.Errorf("drain stopped at operation %s: %w", op.ID, err)
		}

		q.mu.Lock()
		// A concurrent Clear may have emptied the queue while the
		// operation was in flight. Pop only if the head is still ours.
		if len(q.ops) == 0 || q.ops[0].ID != op.ID {
			q.mu.Unlock()
			if delivered {
				sent++
			}
			return sent, nil
		}
		q.ops = q.ops[1:]
		if err := q.persistLocked(ctx); err != nil {
			q.mu.Unlock()
			if delivered {
				sent++
			}
			return sent, err
		}
		q.mu.Unlock()
		if delivered {
			sent++
		}
	}
}

func (q *Queue) apply(ctx context.Context, sink RemoteSink, op Operation) (bool, error) {
	id, err := op.RecordID()
	if err != nil {
		// Malformed payloads would wedge the queue forever; log and
		// let the caller drop the head.
		q.logger.Error("queue: dropping malformed operation",
			"op_id", op.ID, "collection", op.Collection, "error", err)
		return false, nil
	}
	switch op.Type {
	case OpCreate, OpUpdate:
		if err := sink.Write(ctx, op.Collection, id, op.Data); err != nil {
			return false, err
		}
		return true, nil
	case OpDelete:
		if err := sink.Delete(ctx, op.Collection, id); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, errors.New("unknown operation type " + string(op.Type))
	}
}

func (q *Queue) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(q.ops)
	if err != nil {
		return fmt.Errorf("encode queue: %w", err)
	}
	if err := q.store.SaveQueue(ctx, blob); err != nil {
		return fmt.Errorf("persist queue: %w", err)
	}
	return nil
}
