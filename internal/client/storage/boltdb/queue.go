package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

const keyQueue = "queue"

// SaveQueue overwrites the persisted sync queue blob. The queue serializes
// itself to one value under one fixed key, so a restart never loses
// pending work. Queue size is bounded only by local storage.
func (s *Storage) SaveQueue(ctx context.Context, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSync)
		if bucket == nil {
			return fmt.Errorf("sync bucket not found")
		}
		if err := bucket.Put([]byte(keyQueue), data); err != nil {
			return fmt.Errorf("failed to persist queue: %w", err)
		}
		return nil
	})
}

// LoadQueue returns the persisted queue blob, or nil when none exists.
func (s *Storage) LoadQueue(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSync)
		if bucket == nil {
			return fmt.Errorf("sync bucket not found")
		}
		if v := bucket.Get([]byte(keyQueue)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}
	return data, nil
}
