package ports

import (
	"context"
	"time"
)

// TokenService mints and revokes the signed credentials the API hands out.
type TokenService interface {
	// Issue signs the given claims into a time-limited token and returns the
	// token together with its expiry instant.
	Issue(claims map[string]any) (token string, expiresAt time.Time, err error)

	// Revoke parks the token's JTI in the revocation store until the token
	// would have expired anyway. Invalid or already-expired tokens are a no-op.
	Revoke(ctx context.Context, token string) error
}

// TokenRevoker is the revocation set consulted during verification.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
