package domain

import (
	"context"
	"time"
)

// Paste is an immutable text snippet owned by exactly one username. The JSON
// tags fix the snapshot wire format.
type Paste struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PasteRepository defines the port for paste persistence. Pastes are
// append-only and keep insertion order per owner.
type PasteRepository interface {
	Append(ctx context.Context, owner string, p Paste) error
	// FindByID returns the owning username and the paste, or ("", nil, nil)
	// when no paste has that id.
	FindByID(ctx context.Context, id string) (string, *Paste, error)
	// ListByOwner returns the owner's pastes in creation order. An unknown
	// owner yields an empty list, indistinguishable from zero pastes.
	ListByOwner(ctx context.Context, owner string) ([]Paste, error)
}
