package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type recordingRevoker struct {
	jti string
	ttl time.Duration
}

func (r *recordingRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.jti = jti
	r.ttl = ttl
	return nil
}

func (r *recordingRevoker) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}

func TestTokenService_IssueRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	token, expiresAt, err := svc.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	until := time.Until(expiresAt)
	if until < 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("expected ~1h expiry, got %v", until)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "a@x.com" {
		t.Fatalf("email claim lost: %v", claims["email"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}
}

func TestTokenService_IssueOverridesExpiry(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, nil)

	// A caller-supplied exp must not extend the token's lifetime.
	token, _, err := svc.Issue(map[string]any{
		"email": "a@x.com",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	if time.Until(exp.Time) > 2*time.Hour {
		t.Fatalf("caller-supplied exp was honoured: %v", exp.Time)
	}
}

func TestTokenService_IssueWithoutSecret(t *testing.T) {
	svc := NewTokenService("", time.Hour, nil)

	if _, _, err := svc.Issue(map[string]any{"email": "a@x.com"}); err != ErrNoSigningSecret {
		t.Fatalf("expected ErrNoSigningSecret, got %v", err)
	}
}

func TestTokenService_RevokeValidToken(t *testing.T) {
	rev := &recordingRevoker{}
	svc := NewTokenService("secret", time.Hour, rev)

	token, _, err := svc.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if rev.jti == "" {
		t.Fatalf("expected revoker to be called")
	}
	if rev.ttl <= 0 || rev.ttl > time.Hour {
		t.Fatalf("unexpected revocation ttl: %v", rev.ttl)
	}
}

func TestTokenService_RevokeGarbageIsNoop(t *testing.T) {
	rev := &recordingRevoker{}
	svc := NewTokenService("secret", time.Hour, rev)

	if err := svc.Revoke(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if rev.jti != "" {
		t.Fatalf("revoker must not be called for an invalid token")
	}
}

func TestTokenService_RevokeForeignTokenIsNoop(t *testing.T) {
	rev := &recordingRevoker{}
	svc := NewTokenService("secret", time.Hour, rev)

	other := NewTokenService("other-secret", time.Hour, nil)
	token, _, err := other.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if rev.jti != "" {
		t.Fatalf("revoker must not be called for a foreign-signed token")
	}
}
