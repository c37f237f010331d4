package token

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := NewSQLiteSecretStore(filepath.Join(t.TempDir(), "secrets.db"))
	if err != nil {
		t.Fatalf("open secret store: %v", err)
	}
	return NewService(store, time.Hour)
}

func TestIssueCheck_RoundTrip(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tok, err := s.Issue(ctx, 7, ActionFavorite, "Main_Page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Check(ctx, 7, ActionFavorite, "Main_Page", tok); err != nil {
		t.Fatalf("expected token to check out, got %v", err)
	}
}

func TestCheck_WrongAction(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tok, _ := s.Issue(ctx, 7, ActionFavorite, "Main_Page")
	err := s.Check(ctx, 7, ActionUnfavorite, "Main_Page", tok)
	if !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch, got %v", err)
	}
}

func TestCheck_WrongTitle(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tok, _ := s.Issue(ctx, 7, ActionFavorite, "Main_Page")
	err := s.Check(ctx, 7, ActionFavorite, "Other_Page", tok)
	if !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch, got %v", err)
	}
}

func TestCheck_WrongUser(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tok, _ := s.Issue(ctx, 7, ActionListEdit, "")
	err := s.Check(ctx, 9, ActionListEdit, "", tok)
	if !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch, got %v", err)
	}
}

func TestCheck_GarbageToken(t *testing.T) {
	s := newTestService(t)
	err := s.Check(context.Background(), 7, ActionFavorite, "X", "not-a-token")
	if !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch, got %v", err)
	}
}

func TestCheck_EmptyToken(t *testing.T) {
	s := newTestService(t)
	err := s.Check(context.Background(), 7, ActionFavorite, "X", "")
	if !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch, got %v", err)
	}
}

func TestSecret_StablePerUser(t *testing.T) {
	store, err := NewSQLiteSecretStore(filepath.Join(t.TempDir(), "secrets.db"))
	if err != nil {
		t.Fatalf("open secret store: %v", err)
	}
	ctx := context.Background()

	a, err := store.Secret(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := store.Secret(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("expected stable secret for a user")
	}

	other, _ := store.Secret(ctx, 9)
	if string(a) == string(other) {
		t.Fatalf("expected distinct secrets per user")
	}
}

func TestReset_InvalidatesTokens(t *testing.T) {
	store, err := NewSQLiteSecretStore(filepath.Join(t.TempDir(), "secrets.db"))
	if err != nil {
		t.Fatalf("open secret store: %v", err)
	}
	s := NewService(store, time.Hour)
	ctx := context.Background()

	tok, _ := s.Issue(ctx, 7, ActionFavorite, "X")
	if err := store.Reset(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Check(ctx, 7, ActionFavorite, "X", tok); !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch after reset, got %v", err)
	}
}
