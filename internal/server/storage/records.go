package storage

import (
	"context"
	"encoding/json"
	"time"
)

// StoredRecord is one mirrored record. Data is the client document as
// received; the server never interprets it beyond the collection name.
type StoredRecord struct {
	LastModified time.Time
	Collection   string
	ID           string
	DeviceID     string
	Data         json.RawMessage
}

// RecordStorage is the mirror's record table. Writes are last-writer-
// wins: an upsert unconditionally replaces whatever is stored.
type RecordStorage interface {
	// UpsertRecord inserts or replaces the record.
	UpsertRecord(ctx context.Context, rec *StoredRecord) error

	// GetRecord retrieves one record.
	// Returns ErrRecordNotFound if it doesn't exist.
	GetRecord(ctx context.Context, collection, id string) (*StoredRecord, error)

	// DeleteRecord removes one record. Reports whether a record was
	// actually removed; deleting an absent record is not an error.
	DeleteRecord(ctx context.Context, collection, id string) (bool, error)

	// GetCollection returns every record of one collection in id order.
	GetCollection(ctx context.Context, collection string) ([]StoredRecord, error)
}

// SyncMark records when a device last completed a sync.
type SyncMark struct {
	LastSync time.Time
	DeviceID string
}

// SyncMarkStorage persists per-device sync bookkeeping.
type SyncMarkStorage interface {
	// PutSyncMark inserts or replaces the device's mark.
	PutSyncMark(ctx context.Context, mark *SyncMark) error

	// GetSyncMark retrieves a device's mark.
	// Returns ErrSyncMarkNotFound if the device never synced.
	GetSyncMark(ctx context.Context, deviceID string) (*SyncMark, error)
}
