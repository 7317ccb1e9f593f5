package memory

import (
	"context"
	"testing"
	"time"

	"pastebin/internal/domain"
)

func TestUserCreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := New()

	if _, err := db.Create(ctx, "alice", "hash1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.Create(ctx, "alice", "hash2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	u, err := db.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.PasswordHash != "hash1" {
		t.Errorf("hash %q, want the first one", u.PasswordHash)
	}

	u, err = db.GetByUsername(ctx, "nobody")
	if err != nil || u != nil {
		t.Errorf("expected (nil, nil) for unknown user, got (%+v, %v)", u, err)
	}
}

func TestPasteAppendFindList(t *testing.T) {
	ctx := context.Background()
	db := New()

	p1 := domain.Paste{ID: "a", Text: "first", CreatedAt: time.Now()}
	p2 := domain.Paste{ID: "b", Text: "second", CreatedAt: time.Now()}
	if err := db.Append(ctx, "alice", p1); err != nil {
		t.Fatal(err)
	}
	if err := db.Append(ctx, "alice", p2); err != nil {
		t.Fatal(err)
	}

	owner, p, err := db.FindByID(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if owner != "alice" || p.Text != "second" {
		t.Errorf("got owner=%q paste=%+v", owner, p)
	}

	pastes, err := db.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(pastes) != 2 || pastes[0].ID != "a" || pastes[1].ID != "b" {
		t.Errorf("order not preserved: %+v", pastes)
	}
}

func TestSessionRepo_ExpiredEntryRetained(t *testing.T) {
	ctx := context.Background()
	repo := New().NewSessionRepo()

	if err := repo.Create(ctx, "alice", "tok", time.Now().Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}

	// The store keeps expired records; judging expiry is the service's job.
	s, err := repo.GetByToken(ctx, "tok")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil {
		t.Fatal("expired session was evicted from the store")
	}
	if s.Username != "alice" {
		t.Errorf("username %q, want alice", s.Username)
	}

	s, err = repo.GetByToken(ctx, "tok")
	if err != nil || s == nil {
		t.Error("expired session should survive repeated lookups")
	}
}

func TestSessionRepo_UnknownToken(t *testing.T) {
	ctx := context.Background()
	repo := New().NewSessionRepo()

	s, err := repo.GetByToken(ctx, "never-issued")
	if err != nil || s != nil {
		t.Errorf("expected (nil, nil), got (%+v, %v)", s, err)
	}
}
