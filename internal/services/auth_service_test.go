package services

import (
	"context"
	"errors"
	"testing"

	"wayfarer/internal/appstate"
	"wayfarer/internal/repositories"
	"wayfarer/internal/store"
	"wayfarer/pkg/utils"
)

func newAuthFixture() AuthServiceInterface {
	kv := store.NewMemoryKV()
	return NewAuthService(repositories.NewUserRepository(kv), appstate.NewSessionStore())
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Ana@Example.com", "secret1", "  Ana  ")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("register should issue a token")
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("email should be lowercased, got %q", user.Email)
	}
	if user.Name != "Ana" {
		t.Fatalf("name should be trimmed, got %q", user.Name)
	}

	// Case-insensitive lookup on login.
	logged, token, err := svc.Login(ctx, "ANA@example.COM", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || logged.ID != user.ID {
		t.Fatalf("login should return the registered user")
	}

	current, err := svc.CurrentUser(ctx)
	if err != nil || current == nil || current.ID != user.ID {
		t.Fatalf("session pointer not set after login: %v %v", current, err)
	}
}

func TestLoginDistinguishesUnknownEmailFromBadPassword(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "ana@example.com", "secret1", "Ana"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(ctx, "nobody@example.com", "secret1"); !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("unknown email should map to ErrAccountNotFound, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "ana@example.com", "wrongpw"); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("wrong password should map to ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	cases := []struct {
		name                  string
		email, password, user string
	}{
		{"missing fields", "", "secret1", "Ana"},
		{"bad email", "not-an-email", "secret1", "Ana"},
		{"short password", "ana@example.com", "12345", "Ana"},
		{"short name", "ana@example.com", "secret1", "A"},
	}
	for _, tc := range cases {
		if _, _, err := svc.Register(ctx, tc.email, tc.password, tc.user); !errors.Is(err, utils.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "ana@example.com", "secret1", "Ana"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Register(ctx, "ANA@EXAMPLE.COM", "other66", "Another Ana"); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("duplicate email should be rejected case-insensitively, got %v", err)
	}
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	kv := store.NewMemoryKV()
	userRepo := repositories.NewUserRepository(kv)
	svc := NewAuthService(userRepo, appstate.NewSessionStore())
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "ana@example.com", "secret1", "Ana")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	current, err := svc.CurrentUser(ctx)
	if err != nil || current != nil {
		t.Fatalf("session pointer should be gone, got %v %v", current, err)
	}

	// The account itself survives logout.
	stored, err := userRepo.FindByEmail(ctx, "ana@example.com")
	if err != nil || stored == nil {
		t.Fatalf("user record lost on logout: %v %v", stored, err)
	}
}
