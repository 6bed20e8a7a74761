// Package backup exports the full local dataset to a single JSON
// document and restores it. The document is self-describing so a file
// produced on one device can be imported on another.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/models"
)

// Version is the current backup document format version.
const Version = 1

// App identifies documents produced by this program.
const App = "officesync"

// Document is the on-disk backup format.
type Document struct {
	ExportDate  time.Time                    `json:"export_date"`
	App         string                       `json:"app"`
	DeviceID    string                       `json:"device_id"`
	Collections map[string][]json.RawMessage `json:"collections"`
	Version     int                          `json:"version"`
}

// Export reads every collection and assembles a backup document.
func Export(ctx context.Context, store storage.RecordStore, deviceID string) (*Document, error) {
	doc := &Document{
		Version:     Version,
		App:         App,
		ExportDate:  time.Now().UTC(),
		DeviceID:    deviceID,
		Collections: make(map[string][]json.RawMessage, len(models.Collections())),
	}
	for _, col := range models.Collections() {
		records, err := store.GetAll(ctx, col.Name)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", col.Name, err)
		}
		doc.Collections[col.Name] = records
	}
	return doc, nil
}

// Import replaces local collections with the document's contents. Only
// collections present in the document are touched; unknown collection
// names in the document are rejected before anything is cleared.
func Import(ctx context.Context, store storage.RecordStore, doc *Document) error {
	if doc.Version != Version {
		return fmt.Errorf("unsupported backup version %d (want %d)", doc.Version, Version)
	}
	if doc.App != "" && doc.App != App {
		return fmt.Errorf("backup was produced by %q, not %s", doc.App, App)
	}
	for name := range doc.Collections {
		if _, ok := models.LookupCollection(name); !ok {
			return fmt.Errorf("backup contains unknown collection %q", name)
		}
	}

	for name, records := range doc.Collections {
		if err := store.ClearCollection(ctx, name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
		if err := store.PutAll(ctx, name, records); err != nil {
			return fmt.Errorf("restore %s: %w", name, err)
		}
	}
	return nil
}
