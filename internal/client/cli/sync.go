package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/officesync/internal/client/sync"
	"github.com/iudanet/officesync/internal/models"
	"github.com/iudanet/officesync/pkg/api"
)

// RunSync pushes the pending queue to the mirror once.
func (a *App) RunSync(ctx context.Context) error {
	a.Sync.SetOnline(true)
	pending := a.Queue.Len()
	if pending == 0 {
		fmt.Println("✓ Nothing to sync")
		return nil
	}

	fmt.Printf("Syncing %d pending operation(s)...\n", pending)
	sent, err := a.Sync.DrainOnce(ctx)
	if err != nil {
		fmt.Printf("Synced %d operation(s); %d still queued.\n", sent, a.Queue.Len())
		return err
	}
	fmt.Printf("✓ Synced %d operation(s)\n", sent)
	return nil
}

// RunResync runs a full resynchronization in the requested direction.
func (a *App) RunResync(ctx context.Context, args []string) error {
	var fromRemote, toRemote, force bool
	for _, arg := range args {
		switch arg {
		case "--from-remote":
			fromRemote = true
		case "--to-remote":
			toRemote = true
		case "--force":
			force = true
		default:
			return fmt.Errorf("unknown resync flag: %s", arg)
		}
	}
	if fromRemote == toRemote {
		return fmt.Errorf("resync needs exactly one of --from-remote or --to-remote")
	}

	a.Sync.SetOnline(true)

	if toRemote {
		fmt.Println("Pushing all local records to the mirror...")
		if err := a.Sync.ResyncToRemote(ctx); err != nil {
			return err
		}
		fmt.Println("✓ Remote mirror now matches local data")
		return nil
	}

	fmt.Println("Replacing local data with the mirror's...")
	err := a.Sync.ResyncFromRemote(ctx, force)
	if errors.Is(err, sync.ErrQueueNotEmpty) {
		fmt.Printf("⚠️  %v\n", err)
		fmt.Println("Run 'officesync sync' first, or repeat with --force to discard them.")
		return err
	}
	if err != nil {
		return err
	}
	fmt.Println("✓ Local data now matches the remote mirror")
	return nil
}

// RunWatch streams live snapshots of one collection until interrupted.
func (a *App) RunWatch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: watch <collection>")
	}
	name := args[0]
	if _, ok := models.LookupCollection(name); !ok {
		return fmt.Errorf("unknown collection %q", name)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Sync.SetOnline(true)
	fmt.Printf("Watching %s (Ctrl+C to stop)...\n", name)

	snapshots := make(chan []api.Envelope, 1)
	sub := a.Mirror.Subscribe(ctx, name, func(records []api.Envelope) {
		select {
		case snapshots <- records:
		case <-ctx.Done():
		}
	}, a.Logger)
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case records := <-snapshots:
			fmt.Printf("--- snapshot: %d record(s) ---\n", len(records))
			for _, rec := range records {
				fmt.Printf("%s  modified %s  by %s\n",
					rec.ID, rec.LastModified.Format("2006-01-02 15:04:05"), rec.DeviceID)
			}
		}
	}
}
