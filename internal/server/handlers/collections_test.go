package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/officesync/internal/server/hub"
	"github.com/iudanet/officesync/internal/server/storage/sqlite"
	"github.com/iudanet/officesync/pkg/api"
)

func newCollectionsTest(t *testing.T) (*httptest.Server, *sqlite.Storage, *hub.Hub) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	h := hub.New(slog.Default())
	collections := NewCollectionsHandler(slog.Default(), store, h)
	syncMeta := NewSyncMetaHandler(slog.Default(), store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/collections/{collection}", collections.GetCollection)
	mux.HandleFunc("PUT /api/v1/collections/{collection}/{id}", collections.Put)
	mux.HandleFunc("DELETE /api/v1/collections/{collection}/{id}", collections.Delete)
	mux.HandleFunc("PUT /api/v1/sync_metadata/{deviceId}", syncMeta.Put)
	mux.HandleFunc("GET /api/v1/sync_metadata/{deviceId}", syncMeta.Get)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, store, h
}

func doRequest(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func TestPut_StoresRecord(t *testing.T) {
	srv, store, _ := newCollectionsTest(t)

	resp := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c1", api.WriteRequest{
		Data:     json.RawMessage(`{"id":"c1","name":"Asif"}`),
		DeviceID: "device-1",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	rec, err := store.GetRecord(context.Background(), "clients", "c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","name":"Asif"}`, string(rec.Data))
	assert.Equal(t, "device-1", rec.DeviceID)
	assert.WithinDuration(t, time.Now().UTC(), rec.LastModified, time.Minute)
}

func TestPut_Overwrites(t *testing.T) {
	srv, store, _ := newCollectionsTest(t)

	first := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c1", api.WriteRequest{
		Data: json.RawMessage(`{"id":"c1","name":"Asif"}`), DeviceID: "device-1",
	})
	require.Equal(t, http.StatusNoContent, first.StatusCode)

	second := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c1", api.WriteRequest{
		Data: json.RawMessage(`{"id":"c1","name":"Asif Sahab"}`), DeviceID: "device-2",
	})
	require.Equal(t, http.StatusNoContent, second.StatusCode)

	rec, err := store.GetRecord(context.Background(), "clients", "c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","name":"Asif Sahab"}`, string(rec.Data))
	assert.Equal(t, "device-2", rec.DeviceID)
}

func TestPut_Rejections(t *testing.T) {
	srv, _, _ := newCollectionsTest(t)

	resp := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/not_a_collection/c1", api.WriteRequest{
		Data: json.RawMessage(`{}`), DeviceID: "device-1",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c1", api.WriteRequest{
		DeviceID: "device-1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCollection_FullSnapshot(t *testing.T) {
	srv, _, _ := newCollectionsTest(t)

	for _, id := range []string{"c2", "c1"} {
		resp := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/"+id, api.WriteRequest{
			Data: json.RawMessage(`{"id":"` + id + `"}`), DeviceID: "device-1",
		})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/collections/clients", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decodeJSON[api.Snapshot](t, resp)
	assert.Equal(t, "clients", snap.Collection)
	require.Len(t, snap.Records, 2)
	assert.Equal(t, "c1", snap.Records[0].ID)
	assert.Equal(t, "c2", snap.Records[1].ID)
}

func TestGetCollection_EmptyIsValid(t *testing.T) {
	srv, _, _ := newCollectionsTest(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/collections/receipts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := decodeJSON[api.Snapshot](t, resp)
	assert.Equal(t, "receipts", snap.Collection)
	assert.Empty(t, snap.Records)
}

func TestDelete_Record(t *testing.T) {
	srv, _, _ := newCollectionsTest(t)

	put := doRequest(t, http.MethodPut, srv.URL+"/api/v1/collections/clients/c1", api.WriteRequest{
		Data: json.RawMessage(`{"id":"c1"}`), DeviceID: "device-1",
	})
	require.Equal(t, http.StatusNoContent, put.StatusCode)

	del := doRequest(t, http.MethodDelete, srv.URL+"/api/v1/collections/clients/c1", nil)
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	again := doRequest(t, http.MethodDelete, srv.URL+"/api/v1/collections/clients/c1", nil)
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}

func TestSyncMeta_PutAndGet(t *testing.T) {
	srv, _, _ := newCollectionsTest(t)

	missing := doRequest(t, http.MethodGet, srv.URL+"/api/v1/sync_metadata/device-1", nil)
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	mark := api.SyncMark{DeviceID: "device-1", LastSync: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)}
	put := doRequest(t, http.MethodPut, srv.URL+"/api/v1/sync_metadata/device-1", mark)
	require.Equal(t, http.StatusNoContent, put.StatusCode)

	get := doRequest(t, http.MethodGet, srv.URL+"/api/v1/sync_metadata/device-1", nil)
	require.Equal(t, http.StatusOK, get.StatusCode)

	got := decodeJSON[api.SyncMark](t, get)
	assert.Equal(t, "device-1", got.DeviceID)
	assert.True(t, got.LastSync.Equal(mark.LastSync))
}

func TestSyncMeta_RejectsZeroTime(t *testing.T) {
	srv, _, _ := newCollectionsTest(t)

	put := doRequest(t, http.MethodPut, srv.URL+"/api/v1/sync_metadata/device-1", api.SyncMark{DeviceID: "device-1"})
	assert.Equal(t, http.StatusBadRequest, put.StatusCode)
}
