package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"pastebin/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrEmptyPaste indicates that the submitted text was empty or blank.
	ErrEmptyPaste = errors.New("paste text is empty")
	// ErrPasteNotFound indicates that no paste has the requested id.
	ErrPasteNotFound = errors.New("paste not found")
)

// PasteService handles paste creation and retrieval.
type PasteService struct {
	pastes domain.PasteRepository
}

// NewPasteService creates a new paste service.
func NewPasteService(pastes domain.PasteRepository) *PasteService {
	return &PasteService{pastes: pastes}
}

// CreatePaste appends a new paste to the owner's sequence. Blank text is
// rejected here, not in the stores. The id is unique across all owners.
func (s *PasteService) CreatePaste(ctx context.Context, owner, text string) (*domain.Paste, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPaste
	}

	p := domain.Paste{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.pastes.Append(ctx, owner, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPaste looks up a paste by id, returning its owner alongside it.
func (s *PasteService) GetPaste(ctx context.Context, id string) (string, *domain.Paste, error) {
	owner, p, err := s.pastes.FindByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if p == nil {
		return "", nil, ErrPasteNotFound
	}
	return owner, p, nil
}

// ListPastes returns the owner's pastes in creation order. An unknown owner
// yields an empty list, indistinguishable from a user with zero pastes.
func (s *PasteService) ListPastes(ctx context.Context, owner string) ([]domain.Paste, error) {
	return s.pastes.ListByOwner(ctx, owner)
}
