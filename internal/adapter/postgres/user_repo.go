package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pastebin/internal/domain"

	"github.com/lib/pq"
)

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT username, password_hash FROM users WHERE username = $1",
		username,
	).Scan(&u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user. A unique violation maps to domain.ErrUserExists.
func (d *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES ($1, $2, $3)",
		username, passwordHash, time.Now(),
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, domain.ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return &domain.User{Username: username, PasswordHash: passwordHash}, nil
}
