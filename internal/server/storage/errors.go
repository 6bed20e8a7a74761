// Package storage defines the mirror server persistence interfaces.
package storage

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrTokenNotFound     = errors.New("refresh token not found")
	ErrRecordNotFound    = errors.New("record not found")
	ErrSyncMarkNotFound  = errors.New("sync mark not found")
)
