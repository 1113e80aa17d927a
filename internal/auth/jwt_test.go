package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWT() *JWT {
	return NewJWT("super-secret", "tienda-api", "tienda-web")
}

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	j := newTestJWT()
	tok, err := j.Issue("ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := j.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if claims.Subject != "ana@example.com" {
		t.Fatalf("subject mismatch: got %q", claims.Subject)
	}
	if claims.Name != "Ana" {
		t.Fatalf("name mismatch: got %q", claims.Name)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != TokenTTL {
		t.Fatalf("ttl mismatch: got %v want %v", ttl, TokenTTL)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	j := newTestJWT()
	// Past the leeway window.
	j.ttl = -2 * time.Minute

	tok, err := j.Issue("ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = j.Validate(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestJWT().Issue("ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	other := NewJWT("different-secret", "tienda-api", "tienda-web")
	_, err = other.Validate(tok)
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("want ErrBadSignature, got %v", err)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	t.Parallel()

	tok, err := NewJWT("super-secret", "someone-else", "tienda-web").Issue("ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newTestJWT().Validate(tok)
	if !errors.Is(err, ErrWrongAudience) {
		t.Fatalf("want ErrWrongAudience, got %v", err)
	}
}

func TestValidate_WrongAudience(t *testing.T) {
	t.Parallel()

	tok, err := NewJWT("super-secret", "tienda-api", "other-app").Issue("ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = newTestJWT().Validate(tok)
	if !errors.Is(err, ErrWrongAudience) {
		t.Fatalf("want ErrWrongAudience, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := newTestJWT().Validate("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
