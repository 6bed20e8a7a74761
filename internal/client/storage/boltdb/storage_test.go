package boltdb

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(context.Background(), dbPath, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestNew_CreatesBuckets(t *testing.T) {
	store := newTestStorage(t)

	err := store.db.View(func(tx *bbolt.Tx) error {
		require.NotNil(t, tx.Bucket(bucketMeta))
		require.NotNil(t, tx.Bucket(bucketSync))
		for _, col := range models.Collections() {
			require.NotNil(t, tx.Bucket([]byte(col.Name)), col.Name)
			if col.UniqueField != "" {
				require.NotNil(t, tx.Bucket(indexBucket(col.Name)), col.Name)
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(context.Background(), dbPath, slog.Default())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.NoError(t, store.Close())
}

func TestCreate_AssignsIDAndTimestamps(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	client := &models.Client{Name: "Asif Traders", CNIC: "35202-1234567-1"}
	require.NoError(t, store.Create(ctx, models.CollectionClients, client))

	assert.NotEmpty(t, client.ID)
	assert.False(t, client.CreatedAt.IsZero())
	assert.False(t, client.LastModified.IsZero())

	var got models.Client
	require.NoError(t, store.GetByID(ctx, models.CollectionClients, client.ID, &got))
	assert.Equal(t, client.Name, got.Name)
	assert.Equal(t, client.CNIC, got.CNIC)
}

func TestCreate_UniqueConstraint(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first := &models.Client{Name: "First", CNIC: "42101-7654321-9"}
	require.NoError(t, store.Create(ctx, models.CollectionClients, first))

	dup := &models.Client{Name: "Second", CNIC: "42101-7654321-9"}
	err := store.Create(ctx, models.CollectionClients, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrConstraint)
}

func TestGetByIndex(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	client := &models.Client{Name: "Indexed", CNIC: "61101-0000001-3"}
	require.NoError(t, store.Create(ctx, models.CollectionClients, client))

	var got models.Client
	require.NoError(t, store.GetByIndex(ctx, models.CollectionClients, "61101-0000001-3", &got))
	assert.Equal(t, client.ID, got.ID)

	err := store.GetByIndex(ctx, models.CollectionClients, "no-such-cnic", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	store := newTestStorage(t)

	var got models.Client
	err := store.GetByID(context.Background(), models.CollectionClients, "missing", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdate_MigratesIndex(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	client := &models.Client{Name: "Old", CNIC: "11111-1111111-1"}
	require.NoError(t, store.Create(ctx, models.CollectionClients, client))

	client.CNIC = "22222-2222222-2"
	client.Name = "New"
	require.NoError(t, store.Update(ctx, models.CollectionClients, client))

	var got models.Client
	require.NoError(t, store.GetByIndex(ctx, models.CollectionClients, "22222-2222222-2", &got))
	assert.Equal(t, "New", got.Name)

	err := store.GetByIndex(ctx, models.CollectionClients, "11111-1111111-1", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdate_NotFound(t *testing.T) {
	store := newTestStorage(t)

	ghost := &models.Client{Name: "Ghost", CNIC: "99999-9999999-9"}
	ghost.ID = "never-created"
	err := store.Update(context.Background(), models.CollectionClients, ghost)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete_IdempotentAndClearsIndex(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	client := &models.Client{Name: "Doomed", CNIC: "33333-3333333-3"}
	require.NoError(t, store.Create(ctx, models.CollectionClients, client))

	require.NoError(t, store.Delete(ctx, models.CollectionClients, client.ID))

	var got models.Client
	assert.ErrorIs(t, store.GetByID(ctx, models.CollectionClients, client.ID, &got), storage.ErrNotFound)
	assert.ErrorIs(t, store.GetByIndex(ctx, models.CollectionClients, "33333-3333333-3", &got), storage.ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, models.CollectionClients, client.ID))
}

func TestNotifier_ReceivesMutations(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	notifier := &storage.ChangeNotifierMock{
		RecordChangedFunc: func(ctx context.Context, change storage.ChangeType, collection, id string, data json.RawMessage) {
		},
	}
	store.SetNotifier(notifier)

	client := &models.Client{Name: "Watched", CNIC: "44444-4444444-4"}
	require.NoError(t, store.Create(ctx, models.CollectionClients, client))
	client.Phone = "0300-0000000"
	require.NoError(t, store.Update(ctx, models.CollectionClients, client))
	require.NoError(t, store.Delete(ctx, models.CollectionClients, client.ID))

	calls := notifier.RecordChangedCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, storage.ChangeCreate, calls[0].Change)
	assert.Equal(t, storage.ChangeUpdate, calls[1].Change)
	assert.Equal(t, storage.ChangeDelete, calls[2].Change)

	// The delete notification carries the tombstone document.
	var tombstone struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(calls[2].Data, &tombstone))
	assert.Equal(t, client.ID, tombstone.ID)
}

func TestNotifier_SilentOperationsDoNotNotify(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	notifier := &storage.ChangeNotifierMock{
		RecordChangedFunc: func(ctx context.Context, change storage.ChangeType, collection, id string, data json.RawMessage) {
		},
	}
	store.SetNotifier(notifier)

	docs := []json.RawMessage{
		json.RawMessage(`{"id":"r1","category":"fuel","amount":500}`),
		json.RawMessage(`{"id":"r2","category":"rent","amount":25000}`),
	}
	require.NoError(t, store.PutAll(ctx, models.CollectionExpenses, docs))
	require.NoError(t, store.ClearCollection(ctx, models.CollectionExpenses))

	assert.Empty(t, notifier.RecordChangedCalls())
}

func TestClearCollectionAndPutAll(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	exp := &models.Expense{Category: "fuel", Amount: 900}
	require.NoError(t, store.Create(ctx, models.CollectionExpenses, exp))

	require.NoError(t, store.ClearCollection(ctx, models.CollectionExpenses))
	docs, err := store.GetAll(ctx, models.CollectionExpenses)
	require.NoError(t, err)
	assert.Empty(t, docs)

	restored := []json.RawMessage{
		json.RawMessage(`{"id":"a","category":"tea","amount":100}`),
		json.RawMessage(`{"id":"b","category":"paper","amount":250}`),
	}
	require.NoError(t, store.PutAll(ctx, models.CollectionExpenses, restored))

	docs, err = store.GetAll(ctx, models.CollectionExpenses)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestPutAll_RebuildsIndex(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	docs := []json.RawMessage{
		json.RawMessage(`{"id":"c1","name":"Restored","cnic":"55555-5555555-5"}`),
	}
	require.NoError(t, store.PutAll(ctx, models.CollectionClients, docs))

	var got models.Client
	require.NoError(t, store.GetByIndex(ctx, models.CollectionClients, "55555-5555555-5", &got))
	assert.Equal(t, "c1", got.ID)
}

func TestDurability_AcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "durable.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath, slog.Default())
	require.NoError(t, err)

	client := &models.Client{Name: "Persistent", CNIC: "66666-6666666-6"}
	require.NoError(t, store.Create(ctx, models.CollectionClients, client))
	require.NoError(t, store.SaveQueue(ctx, []byte(`[{"id":"op1"}]`)))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath, slog.Default())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	var got models.Client
	require.NoError(t, store.GetByID(ctx, models.CollectionClients, client.ID, &got))
	assert.Equal(t, "Persistent", got.Name)

	blob, err := store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"op1"}]`, string(blob))
}

func TestDeviceID_StableAcrossCalls(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first, err := store.DeviceID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := store.DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSession_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{
		Username:     "owner",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "owner", got.Username)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestUnknownCollection(t *testing.T) {
	store := newTestStorage(t)

	err := store.Create(context.Background(), "bogus", &models.Client{Name: "x", CNIC: "y"})
	assert.ErrorIs(t, err, storage.ErrUnknownCollection)
}
