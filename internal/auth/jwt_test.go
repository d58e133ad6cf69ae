package auth

import (
	"testing"
	"time"

	"webintake-backend-go/internal/models"
)

func testIdentity() models.Identity {
	return models.Identity{
		UserID:   7,
		Username: "pratik",
		Name:     "Pratik Preetam",
		Email:    "pratik@gmail.com",
		Phone:    "9876543210",
		Role:     models.RoleUser,
	}
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	tok, err := m.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != testIdentity() {
		t.Fatalf("identity mismatch: got %+v want %+v", got, testIdentity())
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -1*time.Second)
	tok, err := m.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := m.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager("right-secret", time.Hour)
	tok, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := NewManager("wrong-secret", time.Hour)
	if _, err := verifier.Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	m := NewManager("k", time.Hour)
	if _, err := m.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestRemaining_TracksTokenExpiry(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	tok, err := m.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	remaining, err := m.Remaining(tok)
	if err != nil {
		t.Fatalf("Remaining error: %v", err)
	}
	if remaining <= 59*time.Minute || remaining > time.Hour {
		t.Fatalf("Remaining = %v, want just under an hour", remaining)
	}
}

func TestRemaining_InvalidToken(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	if _, err := m.Remaining("not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}

	expired := NewManager("super-secret", -1*time.Second)
	tok, err := expired.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := NewManager("super-secret", time.Hour).Remaining(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_AdminRolePreserved(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	admin := models.Identity{Name: "Admin", Username: "admin", Role: models.RoleAdmin}
	tok, err := m.Issue(admin)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !got.IsAdmin() {
		t.Fatalf("expected admin role to survive the round trip, got %+v", got)
	}
}
