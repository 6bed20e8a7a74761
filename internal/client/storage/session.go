package storage

import (
	"context"
	"time"
)

// Session is the locally persisted login state for the mirror server.
type Session struct {
	ExpiresAt    time.Time `json:"expires_at"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// SessionStorage persists the login session between runs.
type SessionStorage interface {
	SaveSession(ctx context.Context, session *Session) error

	// GetSession returns ErrSessionNotFound when the user is logged out.
	GetSession(ctx context.Context) (*Session, error)

	DeleteSession(ctx context.Context) error
}
