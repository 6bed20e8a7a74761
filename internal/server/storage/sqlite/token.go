package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/officesync/internal/server/storage"
)

// SaveRefreshToken stores a freshly issued token.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *storage.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.Token,
		token.UserID,
		token.CreatedAt,
		token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves a token.
func (s *Storage) GetRefreshToken(ctx context.Context, token string) (*storage.RefreshToken, error) {
	query := `
		SELECT token, user_id, created_at, expires_at
		FROM refresh_tokens
		WHERE token = ?
	`

	rt := &storage.RefreshToken{}
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&rt.Token,
		&rt.UserID,
		&rt.CreatedAt,
		&rt.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return rt, nil
}

// DeleteRefreshToken revokes one token.
func (s *Storage) DeleteRefreshToken(ctx context.Context, token string) error {
	query := `DELETE FROM refresh_tokens WHERE token = ?`

	if _, err := s.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// DeleteExpiredTokens removes every token past its expiry.
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) error {
	query := `DELETE FROM refresh_tokens WHERE expires_at <= ?`

	if _, err := s.db.ExecContext(ctx, query, now); err != nil {
		return fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return nil
}
