package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/logistics-api/internal/application/inventory"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
	"github.com/jhoicas/logistics-api/internal/infrastructure/memory"
	"github.com/jhoicas/logistics-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/logistics-api/internal/infrastructure/redis"
	"github.com/jhoicas/logistics-api/internal/infrastructure/seed"
	"github.com/jhoicas/logistics-api/pkg/config"
	"github.com/jhoicas/logistics-api/pkg/logger"
)

// storage repos de la app según STORAGE_DRIVER.
type storage struct {
	units    repository.UnitRepository
	users    repository.UserRepository
	products repository.ProductRepository
	txRunner inventory.TxRunner
	close    func()
}

func (s *storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// openStorage abre PostgreSQL (aplicando el esquema) o un store en memoria con el set de ejemplo.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.DB.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		res, err := seed.Load(ctx, store.Units(), store.Users(), store.Products())
		if err != nil {
			return nil, fmt.Errorf("cargar datos de ejemplo: %w", err)
		}
		log.Info().Int("units", res.Units).Int("products", res.Products).Msg("store en memoria con datos de ejemplo")
		return &storage{
			units:    store.Units(),
			users:    store.Users(),
			products: store.Products(),
			txRunner: memory.NewTxRunner(store),
		}, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &storage{
			units:    postgres.NewUnitRepository(pool),
			users:    postgres.NewUserRepository(pool),
			products: postgres.NewProductRepository(pool),
			txRunner: postgres.NewTxRunner(pool),
			close:    pool.Close,
		}, nil
	}
}

// openBlacklist usa Redis si REDIS_ADDR está configurado; si no, la lista vive en memoria del proceso.
func openBlacklist(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (repository.TokenBlacklist, func(), error) {
	if !cfg.Enabled() {
		log.Warn().Msg("REDIS_ADDR vacío: tokens revocados en memoria (no se comparten entre instancias)")
		return memory.NewTokenBlacklist(), func() {}, nil
	}
	client, err := infraredis.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("addr", cfg.Addr).Msg("tokens revocados en Redis")
	return infraredis.NewTokenBlacklist(client), func() { _ = client.Close() }, nil
}
