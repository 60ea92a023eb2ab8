package auth

import (
	"testing"
	"time"

	"github.com/devport/portfolio-api/internal/errs"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret-signing-key"), time.Hour)

	tok, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != "user-123" {
		t.Fatalf("subject mismatch: got %q want %q", got, "user-123")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret-signing-key"), -1*time.Second)

	tok, err := m.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = m.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
	if !errs.IsCode(err, errs.CodeTokenExpired) {
		t.Fatalf("expected token_expired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager([]byte("the-right-signing-key"), time.Hour)
	tok, err := issuer.Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	verifier := NewTokenManager([]byte("the-wrong-signing-key"), time.Hour)
	_, err = verifier.Verify(tok)
	if err == nil {
		t.Fatalf("expected error for forged token, got nil")
	}
	if !errs.IsCode(err, errs.CodeInvalidCredential) {
		t.Fatalf("expected invalid_credential, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager([]byte("super-secret-signing-key"), time.Hour)
	_, err := m.Verify("not.a.jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
	if !errs.IsCode(err, errs.CodeInvalidCredential) {
		t.Fatalf("expected invalid_credential, got %v", err)
	}
	if errs.IsCode(err, errs.CodeTokenExpired) {
		t.Fatalf("malformed token must not be reported as expired")
	}
}

func TestVerify_StillValidWithinWindow(t *testing.T) {
	t.Parallel()

	// A token issued with a 2s window verifies after 1s and fails after
	// the window has passed.
	m := NewTokenManager([]byte("super-secret-signing-key"), 2*time.Second)
	tok, err := m.Issue("u3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	time.Sleep(1 * time.Second)
	if _, err := m.Verify(tok); err != nil {
		t.Fatalf("token should still verify inside its window: %v", err)
	}

	time.Sleep(2 * time.Second)
	_, err = m.Verify(tok)
	if !errs.IsCode(err, errs.CodeTokenExpired) {
		t.Fatalf("expected token_expired after window, got %v", err)
	}
}
