package storage

import (
	"context"
	"time"
)

// Account is a server-side login. The server stores only the SHA-256
// hash of the client-derived auth key, never anything derived from the
// password directly.
type Account struct {
	CreatedAt   time.Time
	LastLogin   *time.Time
	ID          string
	Username    string
	AuthKeyHash string
	PublicSalt  string
}

// UserStorage persists accounts.
type UserStorage interface {
	// CreateUser creates a new account.
	// Returns ErrUserAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, account *Account) error

	// GetUserByUsername retrieves an account by username.
	// Returns ErrUserNotFound if it doesn't exist.
	GetUserByUsername(ctx context.Context, username string) (*Account, error)

	// GetUserByID retrieves an account by ID.
	// Returns ErrUserNotFound if it doesn't exist.
	GetUserByID(ctx context.Context, userID string) (*Account, error)

	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
