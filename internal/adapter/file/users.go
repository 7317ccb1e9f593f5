// Package file implements the domain repositories as JSON snapshot documents.
//
// Each store owns one document and one mutex. Every successful mutation
// rewrites the whole document before the call returns (write-through), inside
// the same critical section as the map change, so readers never observe a
// half-mutated store. A snapshot that fails to parse at startup degrades to
// an empty store; a snapshot that fails to write is logged and the in-memory
// mutation stands.
package file

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"pastebin/internal/domain"
)

// userRecord is the on-disk shape of a user. The "password" key holds the
// bcrypt hash; the field name is fixed by the existing snapshot format.
type userRecord struct {
	Password string `json:"password"`
}

// UserStore is a durable credential store backed by a single JSON document.
type UserStore struct {
	path string

	mu    sync.Mutex
	users map[string]userRecord
}

var _ domain.UserRepository = (*UserStore)(nil)

// NewUserStore loads the snapshot at path, starting empty if it is missing
// or unreadable.
func NewUserStore(path string) *UserStore {
	s := &UserStore{path: path, users: make(map[string]userRecord)}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var m map[string]userRecord
	if err := json.Unmarshal(data, &m); err != nil {
		log.Printf("users snapshot %s unreadable, starting empty: %v", path, err)
		return s
	}
	s.users = m
	return s
}

// GetByUsername returns the user, or (nil, nil) when absent.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	return &domain.User{Username: username, PasswordHash: rec.Password}, nil
}

// Create inserts a new user and persists the snapshot.
func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return nil, domain.ErrUserExists
	}

	s.users[username] = userRecord{Password: passwordHash}
	s.persistLocked()
	return &domain.User{Username: username, PasswordHash: passwordHash}, nil
}

// persistLocked rewrites the snapshot. Callers must hold mu. A write failure
// leaves the in-memory state authoritative; durability catches up on the next
// successful write.
func (s *UserStore) persistLocked() {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		log.Printf("users snapshot encode: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Printf("users snapshot write %s: %v", s.path, err)
	}
}
