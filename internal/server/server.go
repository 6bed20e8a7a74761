// Package server wires the mirror HTTP API together.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/officesync/internal/server/handlers"
	"github.com/iudanet/officesync/internal/server/hub"
	"github.com/iudanet/officesync/internal/server/middleware"
	"github.com/iudanet/officesync/internal/server/storage"
	"github.com/iudanet/officesync/internal/server/storage/sqlite"
)

// Config is the server configuration.
type Config struct {
	Addr            string
	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AuthRateLimit   int
	AuthRateWindow  time.Duration
	Version         string
}

// tokenCleanupInterval is how often revoked-by-expiry refresh tokens
// are swept from storage.
const tokenCleanupInterval = time.Hour

// Server is the mirror service.
type Server struct {
	logger      *slog.Logger
	http        *http.Server
	hub         *hub.Hub
	authLimiter *middleware.RateLimiter
	tokens      storage.TokenStorage
}

// New builds the server over the given storage.
func New(logger *slog.Logger, store *sqlite.Storage, cfg Config) *Server {
	jwtConfig := handlers.JWTConfig{
		Secret:          cfg.JWTSecret,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	}

	h := hub.New(logger)

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	collectionsHandler := handlers.NewCollectionsHandler(logger, store, h)
	watchHandler := handlers.NewWatchHandler(logger, store, h)
	syncMetaHandler := handlers.NewSyncMetaHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, cfg.Version)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	// Credential endpoints get a per-IP budget to slow guessing.
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow, logger)
	limited := middleware.RateLimitMiddleware(authLimiter, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("POST /api/v1/auth/register", limited(http.HandlerFunc(authHandler.Register)))
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", authHandler.GetSalt)
	mux.Handle("POST /api/v1/auth/login", limited(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)

	mux.Handle("GET /api/v1/collections/{collection}", requireAuth(http.HandlerFunc(collectionsHandler.GetCollection)))
	mux.Handle("GET /api/v1/collections/{collection}/watch", requireAuth(http.HandlerFunc(watchHandler.Watch)))
	mux.Handle("PUT /api/v1/collections/{collection}/{id}", requireAuth(http.HandlerFunc(collectionsHandler.Put)))
	mux.Handle("DELETE /api/v1/collections/{collection}/{id}", requireAuth(http.HandlerFunc(collectionsHandler.Delete)))
	mux.Handle("PUT /api/v1/sync_metadata/{deviceId}", requireAuth(http.HandlerFunc(syncMetaHandler.Put)))
	mux.Handle("GET /api/v1/sync_metadata/{deviceId}", requireAuth(http.HandlerFunc(syncMetaHandler.Get)))

	handler := middleware.RecoveryMiddleware(logger)(middleware.LoggingMiddleware(logger)(mux))

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		logger:      logger,
		http:        httpServer,
		hub:         h,
		authLimiter: authLimiter,
		tokens:      store,
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mirror server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go s.tokenCleanupLoop(ctx)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.authLimiter.Stop()
	s.hub.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// tokenCleanupLoop sweeps expired refresh tokens on an interval so
// unreclaimed sessions do not accumulate in storage forever.
func (s *Server) tokenCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeExpiredTokens(ctx)
		}
	}
}

func (s *Server) purgeExpiredTokens(ctx context.Context) {
	if err := s.tokens.DeleteExpiredTokens(ctx, time.Now().UTC()); err != nil {
		s.logger.Warn("token cleanup failed", "error", err)
	}
}
