package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/officesync/internal/server/storage"
	"github.com/iudanet/officesync/internal/server/storage/sqlite"
)

func TestPurgeExpiredTokens(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	srv := New(slog.Default(), store, Config{
		Addr:            "127.0.0.1:0",
		JWTSecret:       []byte("test-secret-key"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
		AuthRateLimit:   10,
		AuthRateWindow:  time.Minute,
	})
	t.Cleanup(srv.authLimiter.Stop)

	account := &storage.Account{
		ID:          "user-1",
		Username:    "owner",
		AuthKeyHash: "hash",
		PublicSalt:  "salt",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, store.CreateUser(ctx, account))

	now := time.Now().UTC()
	expired := &storage.RefreshToken{Token: "old", UserID: account.ID, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	live := &storage.RefreshToken{Token: "new", UserID: account.ID, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.SaveRefreshToken(ctx, expired))
	require.NoError(t, store.SaveRefreshToken(ctx, live))

	srv.purgeExpiredTokens(ctx)

	_, err = store.GetRefreshToken(ctx, "old")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	_, err = store.GetRefreshToken(ctx, "new")
	assert.NoError(t, err)
}
