// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrUserExists indicates a registration attempt for a username that is
// already taken.
var ErrUserExists = errors.New("user already exists")

// User represents a registered account. Users are never mutated or deleted
// after creation.
type User struct {
	Username     string
	PasswordHash string
}

// Session represents a bearer token bound to a username. Sessions live in
// memory only; a process restart invalidates all of them.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// UserRepository defines the port for credential persistence.
type UserRepository interface {
	// GetByUsername returns the user, or (nil, nil) when absent.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Create inserts a new user. Returns ErrUserExists on a duplicate
	// username.
	Create(ctx context.Context, username, passwordHash string) (*User, error)
}

// SessionRepository defines the port for session storage. There is
// deliberately no delete operation: sessions end only by expiry, and expired
// records stay in the store as inert entries until restart.
type SessionRepository interface {
	Create(ctx context.Context, username, token string, expiresAt time.Time) error
	// GetByToken returns the session even when expired, or (nil, nil) when
	// the token was never issued. Judging expiry is the caller's job.
	GetByToken(ctx context.Context, token string) (*Session, error)
}
