package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/synchome/apartment-system/internal/core/domain"
)

func TestSessionService_IssueAndVerify(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	token, err := svc.Issue(map[string]any{
		"email": "alice@example.com",
		"name":  "Alice",
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Email() != "alice@example.com" {
		t.Fatalf("unexpected email claim: %q", claims.Email())
	}
	if claims["name"] != "Alice" {
		t.Fatalf("payload key not embedded: %v", claims["name"])
	}
	if _, ok := claims["iat"]; !ok {
		t.Fatalf("iat claim missing")
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("exp claim missing")
	}
}

func TestSessionService_Issue_MissingEmail(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	if _, err := svc.Issue(map[string]any{"name": "Bob"}); !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
	if _, err := svc.Issue(map[string]any{"email": ""}); !errors.Is(err, domain.ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail for empty email, got %v", err)
	}
}

func TestSessionService_Verify_Expired(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "carol@example.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionService_Verify_WrongKey(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "dave@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("not-the-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionService_Verify_Tampered(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	token, err := svc.Issue(map[string]any{"email": "eve@example.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token + "x"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for garbage, got %v", err)
	}
}
