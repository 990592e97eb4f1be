package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/upturn/portfolio-api/internal/api/metrics"
	"github.com/upturn/portfolio-api/internal/core/ports"
)

// ErrNoSigningSecret is returned by Issue when the service was built without
// a secret; surfaced to clients as a 500, never fatal to the process.
var ErrNoSigningSecret = errors.New("token: signing secret not configured")

// TokenService issues HS256 tokens and parks revoked ones in a revocation set.
type TokenService struct {
	secret  string
	ttl     time.Duration
	revoker ports.TokenRevoker
}

// NewTokenService builds a TokenService. The revoker may be nil, in which case
// Revoke only validates the token and drops it.
func NewTokenService(secret string, ttl time.Duration, revoker ports.TokenRevoker) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: secret, ttl: ttl, revoker: revoker}
}

// Issue copies the caller's claims and signs them with a fixed expiry. The
// registered claims iat, exp and jti always win over caller-supplied values.
func (s *TokenService) Issue(claims map[string]any) (string, time.Time, error) {
	if s.secret == "" {
		return "", time.Time{}, ErrNoSigningSecret
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = expiresAt.Unix()
	mc["jti"] = uuid.NewString()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, err
	}

	metrics.TokensIssuedTotal.Inc()
	return token, expiresAt, nil
}

// Revoke verifies the presented token and records its JTI until expiry.
// Tokens that fail verification carry no authority, so there is nothing to
// revoke and the call succeeds silently.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil
	}

	jti, _ := claims["jti"].(string)
	if jti == "" || s.revoker == nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, jti, ttl); err != nil {
		return err
	}
	metrics.TokensRevokedTotal.Inc()
	return nil
}
