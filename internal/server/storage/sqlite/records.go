package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/officesync/internal/server/storage"
)

// UpsertRecord inserts or replaces the record. Last writer wins: no
// version check, the incoming document replaces the stored one.
func (s *Storage) UpsertRecord(ctx context.Context, rec *storage.StoredRecord) error {
	query := `
		INSERT INTO records (collection, id, data, last_modified, device_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			data = excluded.data,
			last_modified = excluded.last_modified,
			device_id = excluded.device_id
	`

	_, err := s.db.ExecContext(ctx, query,
		rec.Collection,
		rec.ID,
		string(rec.Data),
		rec.LastModified,
		rec.DeviceID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// GetRecord retrieves one record.
func (s *Storage) GetRecord(ctx context.Context, collection, id string) (*storage.StoredRecord, error) {
	query := `
		SELECT collection, id, data, last_modified, device_id
		FROM records
		WHERE collection = ? AND id = ?
	`

	rec := &storage.StoredRecord{}
	var data string
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(
		&rec.Collection,
		&rec.ID,
		&data,
		&rec.LastModified,
		&rec.DeviceID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	rec.Data = []byte(data)
	return rec, nil
}

// DeleteRecord removes one record.
func (s *Storage) DeleteRecord(ctx context.Context, collection, id string) (bool, error) {
	query := `DELETE FROM records WHERE collection = ? AND id = ?`

	result, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// GetCollection returns every record of one collection in id order.
func (s *Storage) GetCollection(ctx context.Context, collection string) ([]storage.StoredRecord, error) {
	query := `
		SELECT collection, id, data, last_modified, device_id
		FROM records
		WHERE collection = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}
	defer rows.Close()

	var records []storage.StoredRecord
	for rows.Next() {
		var rec storage.StoredRecord
		var data string
		if err := rows.Scan(&rec.Collection, &rec.ID, &data, &rec.LastModified, &rec.DeviceID); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Data = []byte(data)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

// PutSyncMark inserts or replaces the device's mark.
func (s *Storage) PutSyncMark(ctx context.Context, mark *storage.SyncMark) error {
	query := `
		INSERT INTO sync_marks (device_id, last_sync)
		VALUES (?, ?)
		ON CONFLICT (device_id) DO UPDATE SET last_sync = excluded.last_sync
	`

	if _, err := s.db.ExecContext(ctx, query, mark.DeviceID, mark.LastSync); err != nil {
		return fmt.Errorf("failed to put sync mark: %w", err)
	}
	return nil
}

// GetSyncMark retrieves a device's mark.
func (s *Storage) GetSyncMark(ctx context.Context, deviceID string) (*storage.SyncMark, error) {
	query := `SELECT device_id, last_sync FROM sync_marks WHERE device_id = ?`

	mark := &storage.SyncMark{}
	err := s.db.QueryRowContext(ctx, query, deviceID).Scan(&mark.DeviceID, &mark.LastSync)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSyncMarkNotFound
		}
		return nil, fmt.Errorf("failed to get sync mark: %w", err)
	}
	return mark, nil
}
