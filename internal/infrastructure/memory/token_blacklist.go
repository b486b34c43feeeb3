package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ repository.TokenBlacklist = (*TokenBlacklist)(nil)

// TokenBlacklist guarda jti revocados con su vencimiento. Se usa cuando no hay REDIS_ADDR.
type TokenBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewTokenBlacklist crea una blacklist vacía.
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{revoked: map[string]time.Time{}, now: time.Now}
}

func (b *TokenBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	// Limpieza perezosa de entradas vencidas.
	for k, exp := range b.revoked {
		if !now.Before(exp) {
			delete(b.revoked, k)
		}
	}
	b.revoked[jti] = now.Add(ttl)
	return nil
}

func (b *TokenBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.revoked[jti]
	if !ok {
		return false, nil
	}
	if !b.now().Before(exp) {
		delete(b.revoked, jti)
		return false, nil
	}
	return true, nil
}
