package storage

import (
	"context"
	"time"
)

// RefreshToken is an opaque single-use token for obtaining a new access
// token without re-deriving the auth key.
type RefreshToken struct {
	CreatedAt time.Time
	ExpiresAt time.Time
	Token     string
	UserID    string
}

// TokenStorage persists refresh tokens.
type TokenStorage interface {
	// SaveRefreshToken stores a freshly issued token.
	SaveRefreshToken(ctx context.Context, token *RefreshToken) error

	// GetRefreshToken retrieves a token.
	// Returns ErrTokenNotFound if it doesn't exist.
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)

	// DeleteRefreshToken revokes one token. Deleting an absent token is
	// not an error.
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteExpiredTokens removes every token past its expiry.
	DeleteExpiredTokens(ctx context.Context, now time.Time) error
}
