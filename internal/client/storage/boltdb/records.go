package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/models"
)

// indexValue extracts the unique-field value from a marshaled record.
// Returns "" when the field is absent or not a string.
func indexValue(doc json.RawMessage, field string) string {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return ""
	}
	v, _ := m[field].(string)
	return v
}

// docID extracts the "id" field from a raw document.
func docID(doc json.RawMessage) (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}
	if probe.ID == "" {
		return "", fmt.Errorf("document has no id")
	}
	return probe.ID, nil
}

// notify delivers a change to the notifier, if one is wired. Fire and
// forget: the local write already succeeded.
func (s *Storage) notify(ctx context.Context, change storage.ChangeType, collection, id string, data json.RawMessage) {
	if s.notifier == nil {
		return
	}
	s.notifier.RecordChanged(ctx, change, collection, id, data)
}

// Create implements storage.RecordStore.
func (s *Storage) Create(ctx context.Context, collection string, rec models.Record) error {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return storage.ErrUnknownCollection
	}

	now := time.Now().UTC()
	if rec.RecordID() == "" {
		rec.SetRecordID(uuid.NewString())
	}
	rec.SetCreatedAt(now)
	rec.Touch(now)

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(col.Name))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", col.Name)
		}

		if col.UniqueField != "" {
			value := indexValue(data, col.UniqueField)
			idx := tx.Bucket(indexBucket(col.Name))
			if value != "" {
				if existing := idx.Get([]byte(value)); existing != nil {
					return fmt.Errorf("%s %q already taken: %w", col.UniqueField, value, storage.ErrConstraint)
				}
				if err := idx.Put([]byte(value), []byte(rec.RecordID())); err != nil {
					return fmt.Errorf("failed to index record: %w", err)
				}
			}
		}

		if err := bucket.Put([]byte(rec.RecordID()), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, storage.ChangeCreate, col.Name, rec.RecordID(), data)
	return nil
}

// GetByID implements storage.RecordStore.
func (s *Storage) GetByID(ctx context.Context, collection, id string, out models.Record) error {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return storage.ErrUnknownCollection
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(col.Name))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", col.Name)
		}
		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		return nil
	})
}

// GetByIndex implements storage.RecordStore.
func (s *Storage) GetByIndex(ctx context.Context, collection, value string, out models.Record) error {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return storage.ErrUnknownCollection
	}
	if col.UniqueField == "" {
		return fmt.Errorf("collection %s has no secondary index", col.Name)
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		idx := tx.Bucket(indexBucket(col.Name))
		if idx == nil {
			return fmt.Errorf("index bucket for %s not found", col.Name)
		}
		id := idx.Get([]byte(value))
		if id == nil {
			return storage.ErrNotFound
		}
		bucket := tx.Bucket([]byte(col.Name))
		data := bucket.Get(id)
		if data == nil {
			// Index points at a removed record; treat as absent.
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		return nil
	})
}

// GetAll implements storage.RecordStore.
func (s *Storage) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return nil, storage.ErrUnknownCollection
	}

	var docs []json.RawMessage
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(col.Name))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", col.Name)
		}
		return bucket.ForEach(func(k, v []byte) error {
			doc := make(json.RawMessage, len(v))
			copy(doc, v)
			docs = append(docs, doc)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Update implements storage.RecordStore.
func (s *Storage) Update(ctx context.Context, collection string, rec models.Record) error {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return storage.ErrUnknownCollection
	}
	if rec.RecordID() == "" {
		return storage.ErrNotFound
	}

	rec.Touch(time.Now().UTC())
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(col.Name))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", col.Name)
		}
		key := []byte(rec.RecordID())
		old := bucket.Get(key)
		if old == nil {
			return storage.ErrNotFound
		}

		if col.UniqueField != "" {
			oldValue := indexValue(old, col.UniqueField)
			newValue := indexValue(data, col.UniqueField)
			if oldValue != newValue {
				idx := tx.Bucket(indexBucket(col.Name))
				if newValue != "" {
					if holder := idx.Get([]byte(newValue)); holder != nil && string(holder) != rec.RecordID() {
						return fmt.Errorf("%s %q already taken: %w", col.UniqueField, newValue, storage.ErrConstraint)
					}
					if err := idx.Put([]byte(newValue), key); err != nil {
						return fmt.Errorf("failed to index record: %w", err)
					}
				}
				if oldValue != "" {
					if err := idx.Delete([]byte(oldValue)); err != nil {
						return fmt.Errorf("failed to drop stale index entry: %w", err)
					}
				}
			}
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify(ctx, storage.ChangeUpdate, col.Name, rec.RecordID(), data)
	return nil
}

// Delete implements storage.RecordStore. Deleting an absent id is a no-op.
func (s *Storage) Delete(ctx context.Context, collection, id string) error {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return storage.ErrUnknownCollection
	}

	removed := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(col.Name))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", col.Name)
		}
		key := []byte(id)
		old := bucket.Get(key)
		if old == nil {
			return nil
		}

		if col.UniqueField != "" {
			if value := indexValue(old, col.UniqueField); value != "" {
				idx := tx.Bucket(indexBucket(col.Name))
				if err := idx.Delete([]byte(value)); err != nil {
					return fmt.Errorf("failed to drop index entry: %w", err)
				}
			}
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}
		removed = true
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		tombstone, _ := json.Marshal(map[string]string{"id": id})
		s.notify(ctx, storage.ChangeDelete, col.Name, id, tombstone)
	}
	return nil
}

// ClearCollection implements storage.RecordStore. Does not notify: the
// callers (full resync, import) replace collections wholesale and must not
// re-enter the sync queue.
func (s *Storage) ClearCollection(ctx context.Context, collection string) error {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return storage.ErrUnknownCollection
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		names := [][]byte{[]byte(col.Name)}
		if col.UniqueField != "" {
			names = append(names, indexBucket(col.Name))
		}
		for _, name := range names {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to drop bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// PutAll implements storage.RecordStore. Does not notify.
func (s *Storage) PutAll(ctx context.Context, collection string, docs []json.RawMessage) error {
	col, ok := models.LookupCollection(collection)
	if !ok {
		return storage.ErrUnknownCollection
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(col.Name))
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", col.Name)
		}
		var idx *bbolt.Bucket
		if col.UniqueField != "" {
			idx = tx.Bucket(indexBucket(col.Name))
		}

		for _, doc := range docs {
			id, err := docID(doc)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(id), doc); err != nil {
				return fmt.Errorf("failed to save record %s: %w", id, err)
			}
			if idx != nil {
				if value := indexValue(doc, col.UniqueField); value != "" {
					if err := idx.Put([]byte(value), []byte(id)); err != nil {
						return fmt.Errorf("failed to index record %s: %w", id, err)
					}
				}
			}
		}
		return nil
	})
}
