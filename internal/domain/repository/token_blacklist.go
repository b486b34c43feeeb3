package repository

import (
	"context"
	"time"
)

// TokenBlacklist guarda los jti de tokens revocados por logout hasta que expiran.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
