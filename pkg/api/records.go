// Package api defines the wire types shared by the client and the mirror
// server.
package api

import (
	"encoding/json"
	"time"
)

// Envelope wraps one record as stored on the mirror. Data holds the
// record's own JSON document; LastModified is stamped by the server on
// every write and serializes as an ISO-8601 (RFC 3339) string; DeviceID
// attributes the write to the installation that produced it.
type Envelope struct {
	ID           string          `json:"id"`
	Data         json.RawMessage `json:"data"`
	LastModified time.Time       `json:"last_modified"`
	DeviceID     string          `json:"device_id"`
}

// Snapshot is the complete current contents of one remote collection.
// Live watchers always receive full snapshots, never diffs.
type Snapshot struct {
	Collection string     `json:"collection"`
	Records    []Envelope `json:"records"`
}

// WriteRequest is the body of PUT /api/v1/collections/{name}/{id}.
type WriteRequest struct {
	Data     json.RawMessage `json:"data"`
	DeviceID string          `json:"device_id"`
}

// SyncMark records when a device last completed a sync. Stored remotely
// under sync_metadata/{deviceId} so the device can recover its last-sync
// time after a restart.
type SyncMark struct {
	DeviceID string    `json:"device_id"`
	LastSync time.Time `json:"last_sync"`
}
