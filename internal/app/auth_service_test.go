package app_test

import (
	"context"
	"errors"
	"testing"

	"quizhub-service/internal/app"
	"quizhub-service/internal/domain"
	"quizhub-service/internal/infra/memory"
)

func TestRegisterThenVerify(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	auth := app.NewAuthService(users)

	if err := auth.Register(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := auth.Verify(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	stored, err := users.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if stored.PasswordHash == "s3cret" || stored.PasswordHash == "" {
		t.Fatalf("expected salted hash, got %q", stored.PasswordHash)
	}
}

func TestRegisterDuplicateUsernameKeepsHash(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	auth := app.NewAuthService(users)

	if err := auth.Register(ctx, "alice", "first"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	before, _ := users.Get(ctx, "alice")

	err := auth.Register(ctx, "alice", "second")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username error, got %v", err)
	}

	after, _ := users.Get(ctx, "alice")
	if after.PasswordHash != before.PasswordHash {
		t.Fatalf("stored hash changed on rejected signup")
	}
	if err := auth.Verify(ctx, "alice", "first"); err != nil {
		t.Fatalf("original password no longer verifies: %v", err)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	ctx := context.Background()
	auth := app.NewAuthService(memory.NewUserRepository())

	if err := auth.Register(ctx, "alice", "right"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := auth.Verify(ctx, "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestVerifyUnknownUser(t *testing.T) {
	auth := app.NewAuthService(memory.NewUserRepository())
	if err := auth.Verify(context.Background(), "ghost", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthMissingFields(t *testing.T) {
	ctx := context.Background()
	auth := app.NewAuthService(memory.NewUserRepository())

	if err := auth.Register(ctx, "", "pw"); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected missing field on empty username, got %v", err)
	}
	if err := auth.Register(ctx, "alice", ""); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected missing field on empty password, got %v", err)
	}
	if err := auth.Verify(ctx, "", ""); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected missing field on empty login, got %v", err)
	}
}
