// Package redis implementa la lista de tokens revocados sobre Redis (go-redis v9).
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/logistics-api/internal/domain/repository"
	"github.com/jhoicas/logistics-api/pkg/config"
)

// KeyPrefix prefijo de las claves de jti revocados.
const KeyPrefix = "logistics:revoked:"

var _ repository.TokenBlacklist = (*TokenBlacklist)(nil)

// NewClient conecta a Redis y verifica con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// TokenBlacklist guarda cada jti revocado como una clave con el TTL restante del token,
// así Redis la elimina sola cuando el token ya no sería válido.
type TokenBlacklist struct {
	client goredis.Cmdable
	prefix string
}

// NewTokenBlacklist construye la blacklist sobre un cliente (o pipeline) de Redis.
func NewTokenBlacklist(client goredis.Cmdable) *TokenBlacklist {
	return &TokenBlacklist{client: client, prefix: KeyPrefix}
}

func (b *TokenBlacklist) key(jti string) string {
	return b.prefix + jti
}

// Revoke marca el jti como revocado durante ttl. Un ttl no positivo no guarda nada.
func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, b.key(jti), "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti está en la lista.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := b.client.Get(ctx, b.key(jti)).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}
	return true, nil
}
