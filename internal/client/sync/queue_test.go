package sync

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/officesync/internal/client/storage"
)

// memQueueStorage keeps the persisted queue blob in memory.
type memQueueStorage struct {
	mu      sync.Mutex
	blob    []byte
	saveErr error
}

func (m *memQueueStorage) SaveQueue(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.blob = append([]byte(nil), data...)
	return nil
}

func (m *memQueueStorage) LoadQueue(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blob, nil
}

func testOp(id, opType, collection, recordID string) Operation {
	return Operation{
		ID:         id,
		Type:       OpType(opType),
		Collection: collection,
		Data:       json.RawMessage(`{"id":"` + recordID + `"}`),
		Timestamp:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		DeviceID:   "device-1",
	}
}

func TestQueue_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{}

	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	op := testOp("op-1", "create", "clients", "c1")
	require.NoError(t, q.Enqueue(ctx, op))
	require.NoError(t, q.Enqueue(ctx, testOp("op-2", "delete", "clients", "c1")))

	// A fresh queue over the same storage sees the same operations,
	// timestamps included.
	reloaded, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)
	require.Equal(t, 2, reloaded.Len())

	ops := reloaded.Snapshot()
	assert.Equal(t, "op-1", ops[0].ID)
	assert.Equal(t, OpCreate, ops[0].Type)
	assert.True(t, ops[0].Timestamp.Equal(op.Timestamp))
	assert.Equal(t, "device-1", ops[0].DeviceID)
}

func TestQueue_EnqueueRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{saveErr: errors.New("disk full")}

	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	err = q.Enqueue(ctx, testOp("op-1", "create", "clients", "c1"))
	require.Error(t, err)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_DrainDeliversInOrder(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{}
	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, testOp("op-1", "create", "clients", "c1")))
	require.NoError(t, q.Enqueue(ctx, testOp("op-2", "update", "clients", "c1")))
	require.NoError(t, q.Enqueue(ctx, testOp("op-3", "delete", "receipts", "r1")))

	sink := &RemoteSinkMock{
		WriteFunc: func(ctx context.Context, collection, id string, data json.RawMessage) error {
			return nil
		},
		DeleteFunc: func(ctx context.Context, collection, id string) error {
			return nil
		},
	}

	sent, err := q.Drain(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.Equal(t, 0, q.Len())

	writes := sink.WriteCalls()
	require.Len(t, writes, 2)
	assert.Equal(t, "c1", writes[0].ID)
	assert.Equal(t, "clients", writes[0].Collection)

	deletes := sink.DeleteCalls()
	require.Len(t, deletes, 1)
	assert.Equal(t, "r1", deletes[0].ID)
	assert.Equal(t, "receipts", deletes[0].Collection)
}

func TestQueue_DrainStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{}
	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, testOp("op-1", "create", "clients", "c1")))
	require.NoError(t, q.Enqueue(ctx, testOp("op-2", "create", "clients", "c2")))
	require.NoError(t, q.Enqueue(ctx, testOp("op-3", "create", "clients", "c3")))

	failed := errors.New("mirror down")
	sink := &RemoteSinkMock{
		WriteFunc: func(ctx context.Context, collection, id string, data json.RawMessage) error {
			if id == "c2" {
				return failed
			}
			return nil
		},
	}

	sent, err := q.Drain(ctx, sink)
	require.ErrorIs(t, err, failed)
	assert.Equal(t, 1, sent)

	// The failed operation stays at the head; everything behind it
	// keeps its position.
	ops := q.Snapshot()
	require.Len(t, ops, 2)
	assert.Equal(t, "op-2", ops[0].ID)
	assert.Equal(t, "op-3", ops[1].ID)

	// The next round resumes exactly where the last one stopped.
	ok := &RemoteSinkMock{
		WriteFunc: func(ctx context.Context, collection, id string, data json.RawMessage) error {
			return nil
		},
	}
	sent, err = q.Drain(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_DrainDropsMalformedOperation(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{}
	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	bad := Operation{
		ID:         "op-bad",
		Type:       OpCreate,
		Collection: "clients",
		Data:       json.RawMessage(`{"name":"no id"}`),
		Timestamp:  time.Now().UTC(),
	}
	require.NoError(t, q.Enqueue(ctx, bad))
	require.NoError(t, q.Enqueue(ctx, testOp("op-2", "create", "clients", "c2")))

	sink := &RemoteSinkMock{
		WriteFunc: func(ctx context.Context, collection, id string, data json.RawMessage) error {
			return nil
		},
	}

	sent, err := q.Drain(ctx, sink)
	require.NoError(t, err)
	// The malformed head is discarded rather than wedging the queue,
	// and a discard is not a delivery.
	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, q.Len())
	assert.Len(t, sink.WriteCalls(), 1)
}

func TestQueue_ClearDuringDrainEndsRound(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{}
	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(ctx, testOp("op-1", "create", "clients", "c1")))
	require.NoError(t, q.Enqueue(ctx, testOp("op-2", "create", "clients", "c2")))

	inFlight := make(chan struct{})
	release := make(chan struct{})
	sink := &RemoteSinkMock{
		WriteFunc: func(ctx context.Context, collection, id string, data json.RawMessage) error {
			close(inFlight)
			<-release
			return nil
		},
	}

	done := make(chan struct{})
	var sent int
	var drainErr error
	go func() {
		defer close(done)
		sent, drainErr = q.Drain(ctx, sink)
	}()

	// Empty the queue while op-1 is still on the wire, then let the
	// write finish. The round must notice its head is gone and stop
	// instead of popping whatever sits there now.
	<-inFlight
	require.NoError(t, q.Clear(ctx))
	close(release)
	<-done

	require.NoError(t, drainErr)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, q.Len())
	assert.Len(t, sink.WriteCalls(), 1)
}

func TestQueue_ConcurrentDrainsDeliverEachOpOnce(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{}
	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	for _, id := range []string{"c1", "c2", "c3", "c4"} {
		require.NoError(t, q.Enqueue(ctx, testOp("op-"+id, "create", "clients", id)))
	}

	sink := &RemoteSinkMock{
		WriteFunc: func(ctx context.Context, collection, id string, data json.RawMessage) error {
			time.Sleep(time.Millisecond)
			return nil
		},
	}

	var wg sync.WaitGroup
	total := 0
	var mu sync.Mutex
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sent, err := q.Drain(ctx, sink)
			assert.NoError(t, err)
			mu.Lock()
			total += sent
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, total)
	assert.Equal(t, 0, q.Len())
	assert.Len(t, sink.WriteCalls(), 4)
}

func TestRecorder_EnqueuesWithDeviceIdentity(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{}
	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	woken := 0
	rec := NewRecorder(q, "device-42", func() { woken++ }, slog.Default())

	rec.RecordChanged(ctx, storage.ChangeCreate, "clients", "c1", json.RawMessage(`{"id":"c1"}`))
	rec.RecordChanged(ctx, storage.ChangeDelete, "clients", "c1", json.RawMessage(`{"id":"c1"}`))

	ops := q.Snapshot()
	require.Len(t, ops, 2)
	assert.Equal(t, OpCreate, ops[0].Type)
	assert.Equal(t, OpDelete, ops[1].Type)
	assert.Equal(t, "device-42", ops[0].DeviceID)
	assert.NotEmpty(t, ops[0].ID)
	assert.False(t, ops[0].Timestamp.IsZero())
	assert.Equal(t, 2, woken)
}

func TestRecorder_SwallowsEnqueueFailure(t *testing.T) {
	ctx := context.Background()
	store := &memQueueStorage{saveErr: errors.New("disk full")}
	q, err := NewQueue(ctx, store, slog.Default())
	require.NoError(t, err)

	woken := false
	rec := NewRecorder(q, "device-42", func() { woken = true }, slog.Default())

	// Must not panic and must not wake the orchestrator.
	rec.RecordChanged(ctx, storage.ChangeCreate, "clients", "c1", json.RawMessage(`{"id":"c1"}`))
	assert.Equal(t, 0, q.Len())
	assert.False(t, woken)
}
