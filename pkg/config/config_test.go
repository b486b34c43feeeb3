package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.Equal(t, config.StoragePostgres, cfg.DB.Driver)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.False(t, cfg.Redis.Enabled())
	// sin JWT_SECRET se genera uno aleatorio de 24 bytes en hex
	assert.Len(t, cfg.JWT.Secret, 48)
}

func TestLoad_NombresHeredados(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "5050")
	t.Setenv("SERVER_SECRET_KEY", "legacy-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5050", cfg.HTTP.Addr())
	assert.Equal(t, "legacy-secret", cfg.JWT.Secret)
}

func TestLoad_EnvTienePrioridadSobreHeredados(t *testing.T) {
	t.Setenv("SERVER_PORT", "5050")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("JWT_SECRET", "nuevo")
	t.Setenv("SERVER_SECRET_KEY", "viejo")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "nuevo", cfg.JWT.Secret)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RedisYRateLimit(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOGIN_RATE_PER_SECOND", "0.5")
	t.Setenv("LOGIN_RATE_BURST", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.DB.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.InDelta(t, 0.5, cfg.RateLimit.LoginPerSecond, 1e-9)
	assert.Equal(t, 2, cfg.RateLimit.LoginBurst)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "logistics", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/logistics?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
