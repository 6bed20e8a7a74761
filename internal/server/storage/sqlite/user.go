package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/officesync/internal/server/storage"
)

// CreateUser creates a new account.
func (s *Storage) CreateUser(ctx context.Context, account *storage.Account) error {
	query := `
		INSERT INTO users (id, username, auth_key_hash, public_salt, created_at, last_login)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		account.ID,
		account.Username,
		account.AuthKeyHash,
		account.PublicSalt,
		account.CreatedAt,
		account.LastLogin,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves an account by username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*storage.Account, error) {
	query := `
		SELECT id, username, auth_key_hash, public_salt, created_at, last_login
		FROM users
		WHERE username = ?
	`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, username))
}

// GetUserByID retrieves an account by ID.
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*storage.Account, error) {
	query := `
		SELECT id, username, auth_key_hash, public_salt, created_at, last_login
		FROM users
		WHERE id = ?
	`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, userID))
}

// UpdateLastLogin records a successful login.
func (s *Storage) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	query := `UPDATE users SET last_login = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, lastLogin, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}

func (s *Storage) scanAccount(row *sql.Row) (*storage.Account, error) {
	account := &storage.Account{}
	var lastLogin sql.NullTime

	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.AuthKeyHash,
		&account.PublicSalt,
		&account.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if lastLogin.Valid {
		account.LastLogin = &lastLogin.Time
	}
	return account, nil
}
