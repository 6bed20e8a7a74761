// Package boltdb implements the client storage interfaces on top of a
// single bbolt database file: one bucket per collection, one index bucket
// per unique secondary field, plus metadata and sync buckets.
package boltdb

import (
	"context"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"

	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/models"
)

var (
	bucketMeta = []byte("meta")
	bucketSync = []byte("sync")
)

// indexBucket returns the name of the secondary-index bucket for a
// collection. The index maps unique-field value -> record id.
func indexBucket(collection string) []byte {
	return []byte("idx_" + collection)
}

// Storage is the bbolt-backed client store.
type Storage struct {
	db       *bbolt.DB
	logger   *slog.Logger
	notifier storage.ChangeNotifier
}

// New opens (creating if needed) the database at dbPath and initializes
// buckets for every registered collection.
func New(ctx context.Context, dbPath string, logger *slog.Logger) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, logger: logger}
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}
	return s, nil
}

// SetNotifier installs the change notifier. Called once during wiring,
// after the sync queue exists; mutations before that are not enqueued.
func (s *Storage) SetNotifier(n storage.ChangeNotifier) {
	s.notifier = n
}

// Close closes the database file.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketMeta, bucketSync} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		for _, col := range models.Collections() {
			if _, err := tx.CreateBucketIfNotExists([]byte(col.Name)); err != nil {
				return fmt.Errorf("failed to create collection bucket %s: %w", col.Name, err)
			}
			if col.UniqueField != "" {
				if _, err := tx.CreateBucketIfNotExists(indexBucket(col.Name)); err != nil {
					return fmt.Errorf("failed to create index bucket for %s: %w", col.Name, err)
				}
			}
		}
		return nil
	})
}
