package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signSession(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestStaticVerifierAcceptsValidToken(t *testing.T) {
	verifier := NewStaticVerifier("test-secret")
	token := signSession(t, "test-secret", "user_2abc", time.Minute)

	userID, err := verifier.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != "user_2abc" {
		t.Fatalf("expected subject user_2abc, got %q", userID)
	}
}

func TestStaticVerifierRejectsWrongSecret(t *testing.T) {
	verifier := NewStaticVerifier("test-secret")
	token := signSession(t, "other-secret", "user_2abc", time.Minute)

	if _, err := verifier.Verify(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestStaticVerifierRejectsExpiredToken(t *testing.T) {
	verifier := NewStaticVerifier("test-secret")
	token := signSession(t, "test-secret", "user_2abc", -time.Minute)

	if _, err := verifier.Verify(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestStaticVerifierRejectsMissingSubject(t *testing.T) {
	verifier := NewStaticVerifier("test-secret")
	token := signSession(t, "test-secret", "", time.Minute)

	if _, err := verifier.Verify(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}

func TestStaticVerifierRejectsGarbage(t *testing.T) {
	verifier := NewStaticVerifier("test-secret")

	if _, err := verifier.Verify(context.Background(), "not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
