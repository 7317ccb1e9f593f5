package file

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"pastebin/internal/domain"
)

// PasteStore is a durable paste store backed by a single JSON document
// mapping owner to their pastes in insertion order.
type PasteStore struct {
	path string

	mu     sync.Mutex
	pastes map[string][]domain.Paste
}

var _ domain.PasteRepository = (*PasteStore)(nil)

// NewPasteStore loads the snapshot at path, starting empty if it is missing
// or unreadable.
func NewPasteStore(path string) *PasteStore {
	s := &PasteStore{path: path, pastes: make(map[string][]domain.Paste)}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var m map[string][]domain.Paste
	if err := json.Unmarshal(data, &m); err != nil {
		log.Printf("pastes snapshot %s unreadable, starting empty: %v", path, err)
		return s
	}
	s.pastes = m
	return s
}

// Append adds a paste to the owner's sequence, creating it if absent, and
// persists the snapshot.
func (s *PasteStore) Append(ctx context.Context, owner string, p domain.Paste) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pastes[owner] = append(s.pastes[owner], p)
	s.persistLocked()
	return nil
}

// FindByID returns the owning username and the paste, or ("", nil, nil) when
// no paste has that id.
//
// Linear scan over every owner's sequence. Fine at current scale; the upgrade
// path is a secondary id->owner index maintained under the same lock.
func (s *PasteStore) FindByID(ctx context.Context, id string) (string, *domain.Paste, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for owner, pastes := range s.pastes {
		for i := range pastes {
			if pastes[i].ID == id {
				p := pastes[i]
				return owner, &p, nil
			}
		}
	}
	return "", nil, nil
}

// ListByOwner returns a copy of the owner's pastes in creation order.
func (s *PasteStore) ListByOwner(ctx context.Context, owner string) ([]domain.Paste, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Paste, len(s.pastes[owner]))
	copy(result, s.pastes[owner])
	return result, nil
}

func (s *PasteStore) persistLocked() {
	data, err := json.MarshalIndent(s.pastes, "", "  ")
	if err != nil {
		log.Printf("pastes snapshot encode: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Printf("pastes snapshot write %s: %v", s.path, err)
	}
}
