package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/iudanet/officesync/internal/client/cli"
	"github.com/iudanet/officesync/internal/client/data"
	"github.com/iudanet/officesync/internal/client/mirror"
	"github.com/iudanet/officesync/internal/client/storage/boltdb"
	"github.com/iudanet/officesync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const syncInterval = 30 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Mirror server URL")
	dbPath := flag.String("db", "officesync-client.db", "Path to local database")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	store, err := boltdb.New(ctx, *dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	deviceID, err := store.DeviceID(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load device identity: %v\n", err)
		os.Exit(1)
	}

	queue, err := sync.NewQueue(ctx, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load sync queue: %v\n", err)
		os.Exit(1)
	}

	mirrorClient := mirror.NewClient(*serverURL, deviceID)
	orchestrator := sync.NewService(queue, mirrorClient, store, deviceID, syncInterval, logger)

	// Attach the recorder last so the construction order can't observe
	// a half-wired store.
	recorder := sync.NewRecorder(queue, deviceID, orchestrator.Wake, logger)
	store.SetNotifier(recorder)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go orchestrator.Run(runCtx)

	app := &cli.App{
		Store:    store,
		Sessions: store,
		Data:     data.NewService(store, logger),
		Mirror:   mirrorClient,
		Sync:     orchestrator,
		Queue:    queue,
		Logger:   logger,
		DeviceID: deviceID,
	}
	app.RestoreSession(ctx)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("OfficeSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
