package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-api/pkg/config"
)

func TestKeyPrefix(t *testing.T) {
	b := NewTokenBlacklist(nil)
	assert.Equal(t, "logistics:revoked:abc", b.key("abc"))
}

func TestRevoke_TTLNoPositivoNoEscribe(t *testing.T) {
	// Con cliente nil, si se intentara escribir el test entraría en pánico.
	b := NewTokenBlacklist(nil)
	assert.NoError(t, b.Revoke(context.Background(), "abc", 0))
	assert.NoError(t, b.Revoke(context.Background(), "", time.Minute))
}

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./internal/infrastructure/redis/
func TestTokenBlacklist_Redis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	ctx := context.Background()
	client, err := NewClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer client.Close()

	b := NewTokenBlacklist(client)
	jti := uuid.NewString()

	revoked, err := b.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, b.Revoke(ctx, jti, time.Minute))
	revoked, err = b.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, KeyPrefix+jti).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
