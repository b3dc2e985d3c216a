package auth

import (
	"errors"
	"testing"

	"github.com/mmeshcher/storefront-system/internal/model"
)

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService("test-secret")

	if _, err := svc.Register("Demo", "demo@example.com", "pass", model.RoleCustomer); err != nil {
		t.Fatalf("first register error: %v", err)
	}

	_, err := svc.Register("Other", "demo@example.com", "pass2", model.RoleCustomer)
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := NewService("test-secret")

	_, err := svc.Register("Demo", "not-an-email", "pass", model.RoleCustomer)
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestSignIn_OpensSession(t *testing.T) {
	svc := NewService("test-secret")

	u, err := svc.Register("Demo", "demo@example.com", "pass", model.RoleCustomer)
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	if svc.IsAuthenticated() {
		t.Fatalf("session open before sign in")
	}

	token, err := svc.SignIn("demo@example.com", "pass")
	if err != nil {
		t.Fatalf("sign in error: %v", err)
	}
	if token == "" {
		t.Fatalf("empty session token")
	}

	if !svc.IsAuthenticated() {
		t.Fatalf("session not open after sign in")
	}
	if got := svc.CurrentUser(); got == nil || got.ID != u.ID {
		t.Fatalf("current user = %+v, want id %s", got, u.ID)
	}
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	svc := NewService("test-secret")

	if _, err := svc.Register("Demo", "demo@example.com", "correct", model.RoleCustomer); err != nil {
		t.Fatalf("register error: %v", err)
	}

	_, err := svc.SignIn("demo@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("session opened with wrong password")
	}

	_, err = svc.SignIn("missing@example.com", "whatever")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSignOut(t *testing.T) {
	svc := NewService("test-secret")

	if _, err := svc.Register("Demo", "demo@example.com", "pass", model.RoleCustomer); err != nil {
		t.Fatalf("register error: %v", err)
	}
	if _, err := svc.SignIn("demo@example.com", "pass"); err != nil {
		t.Fatalf("sign in error: %v", err)
	}

	svc.SignOut()

	if svc.IsAuthenticated() || svc.CurrentUser() != nil {
		t.Fatalf("session still open after sign out")
	}
}

func TestResume_RestoresSessionFromToken(t *testing.T) {
	svc := NewService("test-secret")

	u, err := svc.Register("Demo", "demo@example.com", "pass", model.RoleCustomer)
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	token, err := svc.SignIn("demo@example.com", "pass")
	if err != nil {
		t.Fatalf("sign in error: %v", err)
	}
	svc.SignOut()

	if err := svc.Resume(token); err != nil {
		t.Fatalf("resume error: %v", err)
	}
	if got := svc.CurrentUser(); got == nil || got.ID != u.ID {
		t.Fatalf("resumed user = %+v, want id %s", got, u.ID)
	}
}

func TestResume_RejectsTamperedToken(t *testing.T) {
	svc := NewService("test-secret")

	if _, err := svc.Register("Demo", "demo@example.com", "pass", model.RoleCustomer); err != nil {
		t.Fatalf("register error: %v", err)
	}
	token, err := svc.SignIn("demo@example.com", "pass")
	if err != nil {
		t.Fatalf("sign in error: %v", err)
	}
	svc.SignOut()

	tampered := token[:len(token)-1] + "0"
	if tampered == token {
		tampered = token[:len(token)-1] + "1"
	}

	if err := svc.Resume(tampered); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for tampered token, got %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("session opened from tampered token")
	}
}
