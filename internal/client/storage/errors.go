package storage

import "errors"

// Common client storage errors
var (
	// ErrNotFound indicates that no record exists with the given id.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint indicates that a collection's secondary-key uniqueness
	// constraint was violated.
	ErrConstraint = errors.New("unique constraint violation")

	// ErrUnknownCollection indicates that the collection name is not
	// registered.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrSessionNotFound indicates that no login session is stored.
	ErrSessionNotFound = errors.New("session not found")
)
