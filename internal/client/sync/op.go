// Package sync implements the offline-first synchronization engine: the
// persisted operation queue, the change recorder that feeds it, and the
// orchestrator that drains it into the remote mirror.
package sync

import (
	"encoding/json"
	"fmt"
	"time"
)

// OpType classifies a queued mutation.
type OpType string

const (
	OpCreate OpType = "create"
	OpUpdate OpType = "update"
	OpDelete OpType = "delete"
)

// Operation is one pending mutation awaiting propagation to the mirror.
// Exclusively owned by the queue. Timestamps round-trip through JSON as
// RFC 3339 strings, so the persisted queue survives process restarts
// without losing precision.
type Operation struct {
	Timestamp  time.Time       `json:"timestamp"`
	ID         string          `json:"id"`
	Type       OpType          `json:"type"`
	Collection string          `json:"store"`
	DeviceID   string          `json:"device_id"`
	Data       json.RawMessage `json:"data"`
}

// RecordID extracts the id of the record the operation targets. For
// deletes, Data is the minimal {"id": "..."} document.
func (op Operation) RecordID() (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(op.Data, &probe); err != nil {
		return "", fmt.Errorf("operation %s has unreadable payload: %w", op.ID, err)
	}
	if probe.ID == "" {
		return "", fmt.Errorf("operation %s payload has no record id", op.ID)
	}
	return probe.ID, nil
}
