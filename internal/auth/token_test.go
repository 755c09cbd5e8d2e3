package auth

import (
	"errors"
	"testing"
	"time"

	"skyhi-pos/internal/model"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	p := NewHSProvider("test-secret", "skyhi-pos", time.Hour)

	token, err := p.Sign(42, model.RoleAdmin)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := p.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("role = %s, want admin", claims.Role)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewHSProvider("secret-a", "skyhi-pos", time.Hour)
	verifier := NewHSProvider("secret-b", "skyhi-pos", time.Hour)

	token, err := signer.Sign(1, model.RoleUser)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := NewHSProvider("secret", "other-service", time.Hour)
	verifier := NewHSProvider("secret", "skyhi-pos", time.Hour)

	token, err := signer.Sign(1, model.RoleUser)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	p := NewHSProvider("secret", "skyhi-pos", time.Hour)

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return issued }
	token, err := p.Sign(1, model.RoleUser)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	p.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := p.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	p := NewHSProvider("secret", "skyhi-pos", time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := p.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): want ErrInvalidToken, got %v", token, err)
		}
	}
}
