package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/iudanet/officesync/internal/client/backup"
)

// RunExport writes every collection to a backup file.
func (a *App) RunExport(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: export <file>")
	}
	path := args[0]

	doc, err := backup.Export(ctx, a.Store, a.DeviceID)
	if err != nil {
		return err
	}
	blob, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	total := 0
	for _, records := range doc.Collections {
		total += len(records)
	}
	fmt.Printf("✓ Exported %d record(s) to %s\n", total, path)
	return nil
}

// RunImport replaces local collections with a backup file's contents.
// The imported records are treated like any other local write and will
// be picked up by the next resync, not replayed through the queue.
func (a *App) RunImport(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: import <file>")
	}
	path := args[0]

	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	var doc backup.Document
	if err := json.Unmarshal(blob, &doc); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	if err := backup.Import(ctx, a.Store, &doc); err != nil {
		return err
	}

	total := 0
	for _, records := range doc.Collections {
		total += len(records)
	}
	fmt.Printf("✓ Imported %d record(s) from %s\n", total, path)
	fmt.Println("Run 'officesync resync --to-remote' to push the restored data.")
	return nil
}
