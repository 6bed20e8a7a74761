package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"

	"github.com/iudanet/officesync/pkg/api"
)

// SnapshotFunc receives the full current contents of a collection.
// Implementations replace their view wholesale; envelopes are never
// diffs.
type SnapshotFunc func(records []api.Envelope)

// Subscription is a live watch on one collection.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Unsubscribe stops the watch and waits for the read loop to exit.
func (s *Subscription) Unsubscribe() {
	s.cancel()
	<-s.done
}

// Subscribe opens a live snapshot stream for collection. The server
// sends the full collection on connect and again after every change.
// If the stream cannot be established or drops, onSnapshot is called
// once with an empty snapshot and the subscription degrades: local
// reads remain authoritative until a new Subscribe succeeds.
func (c *Client) Subscribe(ctx context.Context, collection string, onSnapshot SnapshotFunc, logger *slog.Logger) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		c.watch(ctx, collection, onSnapshot, logger)
	}()

	return sub
}

func (c *Client) watch(ctx context.Context, collection string, onSnapshot SnapshotFunc, logger *slog.Logger) {
	url := c.watchURL(collection)

	opts := &websocket.DialOptions{}
	if token := c.accessToken(); token != "" {
		opts.HTTPHeader = http.Header{"Authorization": {"Bearer " + token}}
	}

	conn, _, err := websocket.Dial(ctx, url, opts)
	if err != nil {
		logger.Warn("mirror: watch stream unavailable, degrading to local reads",
			"collection", collection, "error", err)
		onSnapshot(nil)
		return
	}
	defer func() {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()
	// Snapshots for large collections can exceed the default limit.
	conn.SetReadLimit(32 << 20)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn("mirror: watch stream dropped",
					"collection", collection, "error", err)
				onSnapshot(nil)
			}
			return
		}
		var snap api.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			logger.Error("mirror: discarding malformed snapshot",
				"collection", collection, "error", err)
			continue
		}
		onSnapshot(snap.Records)
	}
}

func (c *Client) watchURL(collection string) string {
	base := c.baseURL
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return fmt.Sprintf("%s/api/v1/collections/%s/watch", base, collection)
}
