package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/officesync/internal/client/mirror"
	"github.com/iudanet/officesync/internal/models"
	"github.com/iudanet/officesync/pkg/api"
)

//go:generate moq -out mirror_mock.go . Mirror

// Mirror is the remote side of the engine, implemented by mirror.Client.
type Mirror interface {
	RemoteSink
	ReadCollection(ctx context.Context, collection string) ([]api.Envelope, error)
	PutSyncMark(ctx context.Context, mark api.SyncMark) error
	GetSyncMark(ctx context.Context, deviceID string) (api.SyncMark, error)
}

// LocalStore is the subset of the record store the orchestrator needs
// for full resyncs.
type LocalStore interface {
	GetAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	ClearCollection(ctx context.Context, collection string) error
	PutAll(ctx context.Context, collection string, docs []json.RawMessage) error
}

// State describes what the orchestrator is currently doing.
type State string

const (
	StateOffline       State = "offline"
	StateOnlineIdle    State = "online_idle"
	StateDraining      State = "draining"
	StateFullResyncing State = "full_resyncing"
)

// Status is a point-in-time snapshot for the status command.
type Status struct {
	LastSync    time.Time
	State       State
	QueueLength int
	Online      bool
	AuthFailed  bool
}

// ErrQueueNotEmpty is returned by ResyncFromRemote when pending local
// operations would be lost and force was not set.
var ErrQueueNotEmpty = errors.New("sync queue is not empty")

// Service is the orchestrator. It owns connectivity state, schedules
// drain rounds, and runs full resyncs on demand.
type Service struct {
	queue    *Queue
	mirror   Mirror
	local    LocalStore
	logger   *slog.Logger
	kick     chan struct{}
	interval time.Duration
	deviceID string

	mu         sync.Mutex
	online     bool
	state      State
	lastSync   time.Time
	authFailed bool
}

// NewService builds the orchestrator. interval bounds how long a queued
// operation waits for the next drain attempt while online.
func NewService(queue *Queue, m Mirror, local LocalStore, deviceID string, interval time.Duration, logger *slog.Logger) *Service {
	return &Service{
		queue:    queue,
		mirror:   m,
		local:    local,
		logger:   logger,
		kick:     make(chan struct{}, 1),
		interval: interval,
		deviceID: deviceID,
		state:    StateOffline,
	}
}

// Wake nudges the run loop to attempt a drain without waiting for the
// ticker. Never blocks.
func (s *Service) Wake() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// SetOnline flips connectivity. Going online wakes the loop so queued
// work drains immediately.
func (s *Service) SetOnline(online bool) {
	s.mu.Lock()
	was := s.online
	s.online = online
	if online {
		if s.state == StateOffline {
			s.state = StateOnlineIdle
		}
	} else {
		s.state = StateOffline
	}
	s.mu.Unlock()

	if online && !was {
		s.logger.Info("sync: connectivity restored")
		s.Wake()
	}
	if !online && was {
		s.logger.Info("sync: going offline, writes will queue")
	}
}

// Status reports the current engine state. When the process has not
// synced since it started, the device's persisted sync mark on the
// mirror fills LastSync, so a fresh start still knows when this device
// last completed a round.
func (s *Service) Status(ctx context.Context) Status {
	s.mu.Lock()
	st := Status{
		LastSync:    s.lastSync,
		State:       s.state,
		QueueLength: s.queue.Len(),
		Online:      s.online,
		AuthFailed:  s.authFailed,
	}
	s.mu.Unlock()

	if !st.LastSync.IsZero() || !st.Online {
		return st
	}
	mark, err := s.mirror.GetSyncMark(ctx, s.deviceID)
	if err != nil || mark.LastSync.IsZero() {
		return st
	}
	s.mu.Lock()
	if s.lastSync.IsZero() {
		s.lastSync = mark.LastSync
	}
	st.LastSync = s.lastSync
	s.mu.Unlock()
	return st
}

// Run drives periodic drains until ctx is done.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.kick:
		}
		if _, err := s.DrainOnce(ctx); err != nil {
			s.logger.Warn("sync: drain round ended early", "error", err)
		}
	}
}

// DrainOnce pushes pending operations to the mirror. A no-op while
// offline. On the first remote failure the round stops and the failed
// operation stays queued; unreachable and unauthorized mirrors are both
// retried on the next round.
func (s *Service) DrainOnce(ctx context.Context) (int, error) {
	s.mu.Lock()
	if !s.online || s.state != StateOnlineIdle {
		// Another round or a full resync is already running.
		s.mu.Unlock()
		return 0, nil
	}
	s.state = StateDraining
	s.mu.Unlock()

	sent, err := s.queue.Drain(ctx, s.mirror)

	s.mu.Lock()
	s.state = StateOnlineIdle
	s.authFailed = errors.Is(err, mirror.ErrUnauthorized)
	s.mu.Unlock()

	if err != nil {
		return sent, err
	}
	if sent > 0 {
		s.markSynced(ctx)
	}
	return sent, nil
}

// ResyncFromRemote replaces the whole local dataset with the mirror's
// (remote wins). Every collection is read before anything is cleared,
// so a mid-resync remote failure leaves local data untouched. Pending
// local operations block the resync unless force is set, in which case
// they are discarded.
func (s *Service) ResyncFromRemote(ctx context.Context, force bool) error {
	if n := s.queue.Len(); n > 0 && !force {
		return fmt.Errorf("%w: %d pending operations would be lost", ErrQueueNotEmpty, n)
	}

	if err := s.beginResync(); err != nil {
		return err
	}
	defer s.endResync()

	// Discard only once the resync slot is held: no drain round is in
	// flight anymore, and a refused resync must not touch the queue.
	if n := s.queue.Len(); n > 0 {
		s.logger.Warn("sync: discarding pending operations for forced resync", "count", n)
		if err := s.queue.Clear(ctx); err != nil {
			return fmt.Errorf("clear queue: %w", err)
		}
	}

	fetched := make(map[string][]json.RawMessage, len(models.Collections()))
	for _, col := range models.Collections() {
		envs, err := s.mirror.ReadCollection(ctx, col.Name)
		if err != nil {
			return fmt.Errorf("read %s from mirror: %w", col.Name, err)
		}
		docs := make([]json.RawMessage, 0, len(envs))
		for _, env := range envs {
			docs = append(docs, env.Data)
		}
		fetched[col.Name] = docs
	}

	for _, col := range models.Collections() {
		if err := s.local.ClearCollection(ctx, col.Name); err != nil {
			return fmt.Errorf("clear %s: %w", col.Name, err)
		}
		if err := s.local.PutAll(ctx, col.Name, fetched[col.Name]); err != nil {
			return fmt.Errorf("restore %s: %w", col.Name, err)
		}
	}

	s.logger.Info("sync: full resync from remote complete")
	s.markSynced(ctx)
	return nil
}

// ResyncToRemote pushes every local record to the mirror (local wins,
// last-writer semantics on the remote side).
func (s *Service) ResyncToRemote(ctx context.Context) error {
	if err := s.beginResync(); err != nil {
		return err
	}
	defer s.endResync()

	for _, col := range models.Collections() {
		docs, err := s.local.GetAll(ctx, col.Name)
		if err != nil {
			return fmt.Errorf("read local %s: %w", col.Name, err)
		}
		for _, doc := range docs {
			var probe struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(doc, &probe); err != nil || probe.ID == "" {
				s.logger.Error("sync: skipping record without id during push", "collection", col.Name)
				continue
			}
			if err := s.mirror.Write(ctx, col.Name, probe.ID, doc); err != nil {
				return fmt.Errorf("push %s/%s: %w", col.Name, probe.ID, err)
			}
		}
	}

	s.logger.Info("sync: full resync to remote complete")
	s.markSynced(ctx)
	return nil
}

func (s *Service) beginResync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.online {
		return mirror.ErrUnavailable
	}
	if s.state == StateFullResyncing || s.state == StateDraining {
		return fmt.Errorf("sync already in progress (%s)", s.state)
	}
	s.state = StateFullResyncing
	return nil
}

func (s *Service) endResync() {
	s.mu.Lock()
	if s.online {
		s.state = StateOnlineIdle
	} else {
		s.state = StateOffline
	}
	s.mu.Unlock()
}

func (s *Service) markSynced(ctx context.Context) {
	now := time.Now().UTC()
	s.mu.Lock()
	s.lastSync = now
	s.authFailed = false
	s.mu.Unlock()

	mark := api.SyncMark{DeviceID: s.deviceID, LastSync: now}
	if err := s.mirror.PutSyncMark(ctx, mark); err != nil {
		s.logger.Warn("sync: failed to record sync mark", "error", err)
	}
}
