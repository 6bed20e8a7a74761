// Package storage defines the client-side persistence interfaces: the
// durable record store over named collections, the persisted sync queue
// blob, device identity and the login session.
package storage

import (
	"context"
	"encoding/json"

	"github.com/iudanet/officesync/internal/models"
)

// ChangeType classifies a store mutation.
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

//go:generate moq -out notifier_mock.go . ChangeNotifier

// ChangeNotifier receives every successful store mutation. The store calls
// it fire-and-forget: implementations must not block for long and must
// swallow their own failures (log, never propagate), so that local
// durability is never coupled to sync availability.
//
// For deletes, data is the minimal document {"id": "..."}.
type ChangeNotifier interface {
	RecordChanged(ctx context.Context, change ChangeType, collection, id string, data json.RawMessage)
}

//go:generate moq -out recordstore_mock.go . RecordStore

// RecordStore is durable, transactional CRUD over named collections.
// Mutations additionally notify the configured ChangeNotifier.
type RecordStore interface {
	// Create assigns an id and creation timestamp to rec, persists it and
	// fills rec in place. Returns ErrConstraint if the collection's unique
	// field already holds the record's value.
	Create(ctx context.Context, collection string, rec models.Record) error

	// GetByID unmarshals the record with the given id into out.
	// Returns ErrNotFound if it does not exist.
	GetByID(ctx context.Context, collection, id string, out models.Record) error

	// GetByIndex looks a record up by the collection's unique field value.
	// Returns ErrNotFound if no record holds the value.
	GetByIndex(ctx context.Context, collection, value string, out models.Record) error

	// GetAll returns the raw JSON documents of every record in the
	// collection, in key order.
	GetAll(ctx context.Context, collection string) ([]json.RawMessage, error)

	// Update replaces the record keyed by rec's id and refreshes its
	// last-modified timestamp. Returns ErrNotFound for an unknown id.
	Update(ctx context.Context, collection string, rec models.Record) error

	// Delete removes the record. Deleting an absent id is not an error.
	Delete(ctx context.Context, collection, id string) error

	// ClearCollection removes every record in one collection. Used only by
	// full resync and import; does not notify.
	ClearCollection(ctx context.Context, collection string) error

	// PutAll bulk-inserts raw documents (each must carry an "id" field).
	// Used only by full resync and import; does not notify.
	PutAll(ctx context.Context, collection string, docs []json.RawMessage) error
}

// QueueStorage persists the sync queue as one opaque blob under a fixed
// key. The whole queue is rewritten on every mutation.
type QueueStorage interface {
	SaveQueue(ctx context.Context, data []byte) error
	// LoadQueue returns nil data when no queue has been persisted yet.
	LoadQueue(ctx context.Context) ([]byte, error)
}

// DeviceStorage owns the per-installation device identity.
type DeviceStorage interface {
	// DeviceID returns the persisted device identity, generating and
	// persisting one on first use.
	DeviceID(ctx context.Context) (string, error)
}
