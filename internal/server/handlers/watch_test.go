package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/officesync/internal/server/hub"
	"github.com/iudanet/officesync/internal/server/storage/sqlite"
	"github.com/iudanet/officesync/pkg/api"
)

func newWatchTest(t *testing.T) (*httptest.Server, *hub.Hub) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	h := hub.New(slog.Default())
	collections := NewCollectionsHandler(slog.Default(), store, h)
	watch := NewWatchHandler(slog.Default(), store, h)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/collections/{collection}/watch", watch.Watch)
	mux.HandleFunc("PUT /api/v1/collections/{collection}/{id}", collections.Put)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, h
}

func wsURL(srv *httptest.Server, path string) string {
	return strings.Replace(srv.URL, "http://", "ws://", 1) + path
}

func readSnapshot(ctx context.Context, t *testing.T, conn *websocket.Conn) api.Snapshot {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var snap api.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return snap
}

func TestWatch_InitialSnapshotThenBroadcast(t *testing.T) {
	srv, h := newWatchTest(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	put := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c1", api.WriteRequest{
		Data: json.RawMessage(`{"id":"c1","name":"Asif"}`), DeviceID: "device-1",
	})
	require.Equal(t, http.StatusNoContent, put.StatusCode)

	conn, _, err := websocket.Dial(ctx, wsURL(srv, "/api/v1/collections/clients/watch"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	initial := readSnapshot(ctx, t, conn)
	assert.Equal(t, "clients", initial.Collection)
	require.Len(t, initial.Records, 1)
	assert.Equal(t, "c1", initial.Records[0].ID)

	require.Eventually(t, func() bool {
		return h.SubscriberCount("clients") == 1
	}, 5*time.Second, 10*time.Millisecond)

	put = doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c2", api.WriteRequest{
		Data: json.RawMessage(`{"id":"c2","name":"Bilal"}`), DeviceID: "device-2",
	})
	require.Equal(t, http.StatusNoContent, put.StatusCode)

	updated := readSnapshot(ctx, t, conn)
	require.Len(t, updated.Records, 2, "broadcasts carry the full collection, not a diff")
	assert.Equal(t, "c1", updated.Records[0].ID)
	assert.Equal(t, "c2", updated.Records[1].ID)
}

func TestWatch_MutationDuringConnectIsNotLost(t *testing.T) {
	srv, h := newWatchTest(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv, "/api/v1/collections/clients/watch"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// The subscriber is registered before it has read anything, so a
	// write racing the initial snapshot still produces a broadcast.
	require.Eventually(t, func() bool {
		return h.SubscriberCount("clients") == 1
	}, 5*time.Second, 10*time.Millisecond)

	put := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c1", api.WriteRequest{
		Data: json.RawMessage(`{"id":"c1","name":"Asif"}`), DeviceID: "device-1",
	})
	require.Equal(t, http.StatusNoContent, put.StatusCode)

	// Depending on how the write raced the initial snapshot, the record
	// shows up in the first or the second message.
	snap := readSnapshot(ctx, t, conn)
	if len(snap.Records) == 0 {
		snap = readSnapshot(ctx, t, conn)
	}
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "c1", snap.Records[0].ID)
}

func TestWatch_UnknownCollection(t *testing.T) {
	srv, _ := newWatchTest(t)

	resp, err := http.Get(srv.URL + "/api/v1/collections/not_a_collection/watch")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWatch_UnregistersOnDisconnect(t *testing.T) {
	srv, h := newWatchTest(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv, "/api/v1/collections/clients/watch"), nil)
	require.NoError(t, err)

	readSnapshot(ctx, t, conn)
	require.Eventually(t, func() bool {
		return h.SubscriberCount("clients") == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return h.SubscriberCount("clients") == 0
	}, 5*time.Second, 10*time.Millisecond)
}
