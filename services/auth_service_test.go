package services

import (
	"context"
	"errors"
	"testing"

	"github.com/georgesofianosgr/care-track/repository"
	"github.com/georgesofianosgr/care-track/store"
)

func newAuthService() (*AuthService, *repository.UserRepository, *store.MemoryBackend) {
	backend := store.NewMemoryBackend()
	users := repository.NewUserRepository(backend, "caretrack")
	return NewAuthService(users, backend, "caretrack"), users, backend
}

func TestLoginCreatesUserOnFirstVisit(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService()

	user, err := svc.LoginWithEmail(ctx, "ana@example.com", "Ana", "Pérez")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID == "" || user.FirstName != "Ana" {
		t.Fatalf("unexpected user: %+v", user)
	}

	current, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if current == nil || current.ID != user.ID {
		t.Fatalf("session pointer not persisted: %+v", current)
	}
}

func TestLoginResolvesExistingUser(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService()

	first, err := svc.LoginWithEmail(ctx, "ana@example.com", "Ana", "Pérez")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.LoginWithEmail(ctx, "ana@example.com", "Different", "Name")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if second.ID != first.ID {
		t.Fatal("second login created a new user")
	}
	if second.FirstName != "Ana" {
		t.Fatalf("existing names should be kept, got %q", second.FirstName)
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService()

	for _, email := range []string{"", "   ", "not-an-email"} {
		if _, err := svc.LoginWithEmail(ctx, email, "Ana", "Pérez"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("email %q: want ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService()

	if _, err := svc.LoginWithEmail(ctx, "ana@example.com", "Ana", "Pérez"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	current, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if current != nil {
		t.Fatalf("still logged in: %+v", current)
	}
}

func TestStaleSessionPointerIsCleared(t *testing.T) {
	ctx := context.Background()
	svc, users, backend := newAuthService()

	user, err := svc.LoginWithEmail(ctx, "ana@example.com", "Ana", "Pérez")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// The user record vanishes underneath the pointer.
	if _, err := users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	current, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if current != nil {
		t.Fatalf("stale pointer resolved to %+v", current)
	}

	raw, err := backend.Get(ctx, "caretrack_current_user_id")
	if err != nil {
		t.Fatalf("get pointer: %v", err)
	}
	if raw != nil {
		t.Fatalf("stale pointer not cleared: %q", raw)
	}
}
