package mirror

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/officesync/pkg/api"
)

func TestWrite_SendsEnvelope(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody api.WriteRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "device-7")
	c.SetToken("tok")

	err := c.Write(context.Background(), "clients", "c1", json.RawMessage(`{"id":"c1"}`))
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/collections/clients/c1", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "device-7", gotBody.DeviceID)
	assert.JSONEq(t, `{"id":"c1"}`, string(gotBody.Data))
}

func TestDelete_NotFoundIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Not Found","message":"record not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "device-7")
	err := c.Delete(context.Background(), "clients", "gone")
	assert.NoError(t, err)
}

func TestReadCollection_ParsesSnapshot(t *testing.T) {
	snap := api.Snapshot{
		Collection: "clients",
		Records: []api.Envelope{
			{ID: "c1", Data: json.RawMessage(`{"id":"c1"}`), LastModified: time.Now().UTC(), DeviceID: "d1"},
			{ID: "c2", Data: json.RawMessage(`{"id":"c2"}`), LastModified: time.Now().UTC(), DeviceID: "d2"},
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/collections/clients", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(snap))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "device-7")
	records, err := c.ReadCollection(context.Background(), "clients")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c1", records[0].ID)
	assert.Equal(t, "d2", records[1].DeviceID)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "device-7")
			err := c.Write(context.Background(), "clients", "c1", json.RawMessage(`{}`))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnreachableServerIsUnavailable(t *testing.T) {
	// Nothing listens here.
	c := NewClient("http://127.0.0.1:1", "device-7")
	err := c.Write(context.Background(), "clients", "c1", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSyncMark_RoundTrip(t *testing.T) {
	var stored api.SyncMark

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/sync_metadata/{deviceId}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&stored))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/v1/sync_metadata/{deviceId}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(stored))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, "device-7")
	mark := api.SyncMark{DeviceID: "device-7", LastSync: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	require.NoError(t, c.PutSyncMark(context.Background(), mark))

	got, err := c.GetSyncMark(context.Background(), "device-7")
	require.NoError(t, err)
	assert.Equal(t, "device-7", got.DeviceID)
	assert.True(t, got.LastSync.Equal(mark.LastSync))
}

func TestLoginFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "owner", r.PathValue("username"))
		require.NoError(t, json.NewEncoder(w).Encode(api.SaltResponse{PublicSalt: "c2FsdA=="}))
	})
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "owner", req.Username)
		require.NoError(t, json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
		}))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, "device-7")

	salt, err := c.GetSalt(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, "c2FsdA==", salt.PublicSalt)

	tokens, err := c.Login(context.Background(), api.LoginRequest{Username: "owner", AuthKeyHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.EqualValues(t, 900, tokens.ExpiresIn)
}
