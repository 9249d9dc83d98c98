package repository

import (
	"context"
	"errors"
	"testing"

	"hackathon/backend/services/auth-service/internal/models"
)

func TestMemoryUserStore(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	user := &models.User{ID: "1", Email: " Ada@Example.com", PasswordHash: "h", Role: "student"}
	if err := store.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	dup := &models.User{ID: "2", Email: "ada@example.com", PasswordHash: "h", Role: "donor"}
	if err := store.Create(ctx, dup); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := store.GetByEmail(ctx, "ADA@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != "1" || got.Role != "student" {
		t.Fatalf("unexpected user %+v", got)
	}

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
