// Package memory implements in-memory repositories.
//
// The session store lives here in every deployment: tokens are deliberately
// never persisted, so a process restart invalidates all of them. The user and
// paste repositories serve tests and development.
package memory

import (
	"context"
	"sync"
	"time"

	"pastebin/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	pastes   map[string][]domain.Paste
	sessions map[string]*domain.Session
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users:    make(map[string]*domain.User),
		pastes:   make(map[string][]domain.Paste),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.PasteRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if u, ok := db.users[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.users[username]; ok {
		return nil, domain.ErrUserExists
	}

	u := &domain.User{Username: username, PasswordHash: passwordHash}
	db.users[username] = u
	cp := *u
	return &cp, nil
}

// --- PasteRepository ---

// Append adds a paste to the owner's sequence.
func (db *DB) Append(ctx context.Context, owner string, p domain.Paste) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.pastes[owner] = append(db.pastes[owner], p)
	return nil
}

// FindByID scans all owners for the paste with the given id.
func (db *DB) FindByID(ctx context.Context, id string) (string, *domain.Paste, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for owner, pastes := range db.pastes {
		for i := range pastes {
			if pastes[i].ID == id {
				p := pastes[i]
				return owner, &p, nil
			}
		}
	}
	return "", nil, nil
}

// ListByOwner returns the owner's pastes in creation order.
func (db *DB) ListByOwner(ctx context.Context, owner string) ([]domain.Paste, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Paste, len(db.pastes[owner]))
	copy(result, db.pastes[owner])
	return result, nil
}

// --- SessionRepository ---

// SessionRepo implements session storage on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps the DB as a SessionRepository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create records a new session.
func (r *SessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
	}
	return nil
}

// GetByToken retrieves a session by token. Expired sessions are returned
// as-is, not evicted; the service layer reports them as expired and the
// records stay until restart.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
