package token

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := New("secret", 30*time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	raw, err := svc.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	subject, err := svc.Verify(raw, now.Add(29*time.Minute))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := New("secret", 30*time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	raw, err := svc.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Exactly at expiry the token is already invalid.
	if _, err := svc.Verify(raw, now.Add(30*time.Minute)); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired at expiry, got %v", err)
	}
	if _, err := svc.Verify(raw, now.Add(time.Hour)); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := New("secret", 30*time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	raw, err := svc.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(raw, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered, now); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestVerify_TamperedAndExpired(t *testing.T) {
	svc := New("secret", 30*time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	raw, err := svc.Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	tampered := raw[:len(raw)-2] + "xx"

	// Even when the token is also expired, a bad signature must never
	// surface expiry details.
	if _, err := svc.Verify(tampered, now.Add(time.Hour)); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	raw, err := New("secret-a", time.Hour).Issue("alice@example.com", now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := New("secret-b", time.Hour).Verify(raw, now); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := New("secret", time.Hour)
	for _, raw := range []string{"", "garbage", "a.b.c", "ey.ey.ey"} {
		if _, err := svc.Verify(raw, time.Now()); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestNew_DefaultTTL(t *testing.T) {
	if got := New("secret", 0).TTL(); got != DefaultTTL {
		t.Fatalf("expected DefaultTTL, got %v", got)
	}
	if got := New("secret", -time.Minute).TTL(); got != DefaultTTL {
		t.Fatalf("expected DefaultTTL for negative ttl, got %v", got)
	}
}
