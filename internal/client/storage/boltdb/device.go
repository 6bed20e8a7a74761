package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const keyDeviceID = "device_id"

// DeviceID returns this installation's persisted identity, generating and
// persisting a new one on first use. The id is only ever regenerated when
// the database file itself is removed.
func (s *Storage) DeviceID(ctx context.Context) (string, error) {
	var id string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)
		if bucket == nil {
			return fmt.Errorf("meta bucket not found")
		}

		if existing := bucket.Get([]byte(keyDeviceID)); existing != nil {
			id = string(existing)
			return nil
		}

		id = uuid.NewString()
		if err := bucket.Put([]byte(keyDeviceID), []byte(id)); err != nil {
			return fmt.Errorf("failed to persist device id: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}
	return id, nil
}
