package app

import (
	"context"
	"testing"

	"pastebin/internal/domain"
)

type mockPasteRepo struct {
	appendFn      func(ctx context.Context, owner string, p domain.Paste) error
	findByIDFn    func(ctx context.Context, id string) (string, *domain.Paste, error)
	listByOwnerFn func(ctx context.Context, owner string) ([]domain.Paste, error)
}

func (m *mockPasteRepo) Append(ctx context.Context, owner string, p domain.Paste) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, owner, p)
	}
	return nil
}

func (m *mockPasteRepo) FindByID(ctx context.Context, id string) (string, *domain.Paste, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return "", nil, nil
}

func (m *mockPasteRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Paste, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, owner)
	}
	return nil, nil
}

func TestPasteService_CreatePaste_RejectsBlank(t *testing.T) {
	ctx := context.Background()
	svc := NewPasteService(&mockPasteRepo{
		appendFn: func(ctx context.Context, owner string, p domain.Paste) error {
			t.Error("blank paste reached the repository")
			return nil
		},
	})

	for _, text := range []string{"", "   ", "\n\t "} {
		if _, err := svc.CreatePaste(ctx, "alice", text); err != ErrEmptyPaste {
			t.Errorf("text %q: expected ErrEmptyPaste, got %v", text, err)
		}
	}
}

func TestPasteService_CreatePaste_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()

	var appended []domain.Paste
	svc := NewPasteService(&mockPasteRepo{
		appendFn: func(ctx context.Context, owner string, p domain.Paste) error {
			if owner != "alice" {
				t.Errorf("owner %q, want alice", owner)
			}
			appended = append(appended, p)
			return nil
		},
	})

	p1, err := svc.CreatePaste(ctx, "alice", "hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p2, err := svc.CreatePaste(ctx, "alice", "world")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if p1.ID == "" || p2.ID == "" {
		t.Error("paste ids should not be empty")
	}
	if p1.ID == p2.ID {
		t.Error("paste ids should be unique")
	}
	if p1.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
	if len(appended) != 2 {
		t.Fatalf("expected 2 appends, got %d", len(appended))
	}
}

func TestPasteService_GetPaste_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewPasteService(&mockPasteRepo{})

	_, _, err := svc.GetPaste(ctx, "no-such-id")
	if err != ErrPasteNotFound {
		t.Errorf("expected ErrPasteNotFound, got %v", err)
	}
}

func TestPasteService_GetPaste_ReturnsOwner(t *testing.T) {
	ctx := context.Background()
	svc := NewPasteService(&mockPasteRepo{
		findByIDFn: func(ctx context.Context, id string) (string, *domain.Paste, error) {
			return "alice", &domain.Paste{ID: id, Text: "hello"}, nil
		},
	})

	owner, p, err := svc.GetPaste(ctx, "abc")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if owner != "alice" || p.Text != "hello" {
		t.Errorf("got owner=%q text=%q", owner, p.Text)
	}
}
