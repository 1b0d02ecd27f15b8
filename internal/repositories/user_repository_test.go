package repositories

import (
	"context"
	"testing"

	"wayfarer/internal/models/domain"
	"wayfarer/internal/store"
)

func TestUserSaveAndFindByEmail(t *testing.T) {
	repo := NewUserRepository(store.NewMemoryKV())
	ctx := context.Background()

	stored := domain.StoredUser{
		User:           domain.User{ID: "u1", Email: "ana@example.com", Name: "Ana"},
		PasswordMarker: "marker",
	}
	if err := repo.Save(ctx, stored); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "ANA@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found == nil || found.ID != "u1" || found.PasswordMarker != "marker" {
		t.Fatalf("wrong user: %+v", found)
	}

	missing, err := repo.FindByEmail(ctx, "ghost@example.com")
	if err != nil || missing != nil {
		t.Fatalf("missing user should be nil without error, got %v %v", missing, err)
	}
}

func TestUserDirectorySurvivesCorruption(t *testing.T) {
	kv := store.NewMemoryKV()
	repo := NewUserRepository(kv)
	ctx := context.Background()

	if err := kv.Set(ctx, store.UsersKey, []byte("{corrupt")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	users, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("corrupt directory should read as empty, got %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty directory, got %d entries", len(users))
	}

	// Writes still work afterwards.
	if err := repo.Save(ctx, domain.StoredUser{User: domain.User{ID: "u1", Email: "a@b.c"}}); err != nil {
		t.Fatalf("save after corruption failed: %v", err)
	}
}

func TestCurrentUserPointer(t *testing.T) {
	repo := NewUserRepository(store.NewMemoryKV())
	ctx := context.Background()

	current, err := repo.CurrentUser(ctx)
	if err != nil || current != nil {
		t.Fatalf("no session should read as nil, got %v %v", current, err)
	}

	user := domain.User{ID: "u1", Email: "ana@example.com"}
	if err := repo.SetCurrentUser(ctx, user); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	current, err = repo.CurrentUser(ctx)
	if err != nil || current == nil || current.ID != "u1" {
		t.Fatalf("pointer not readable: %v %v", current, err)
	}

	if err := repo.ClearCurrentUser(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	current, err = repo.CurrentUser(ctx)
	if err != nil || current != nil {
		t.Fatalf("pointer should be cleared, got %v %v", current, err)
	}
}
