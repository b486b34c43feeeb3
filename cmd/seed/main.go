// seed vacía la base de datos y carga el set de datos de ejemplo
// (unidades u1–u3, empleados, supervisores y productos p1–p5, contraseña "12").
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (DATABASE_URL o DB_HOST, DB_PORT, ...).
package main

import (
	"context"
	"time"

	"github.com/jhoicas/logistics-api/internal/infrastructure/postgres"
	"github.com/jhoicas/logistics-api/internal/infrastructure/seed"
	"github.com/jhoicas/logistics-api/pkg/config"
	"github.com/jhoicas/logistics-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.Driver != config.StoragePostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("seed solo aplica a PostgreSQL; el modo memoria carga el set al arrancar")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}

	// Vaciado y carga en una sola transacción: o queda el set completo o nada cambia.
	var res seed.Result
	err = postgres.NewTxRunner(pool).RunQuerier(ctx, func(q postgres.Querier) error {
		if err := postgres.Reset(ctx, q); err != nil {
			return err
		}
		loaded, err := seed.Load(ctx, postgres.NewUnitRepository(q), postgres.NewUserRepository(q), postgres.NewProductRepository(q))
		res = loaded
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos de ejemplo")
	}

	log.Info().
		Int("units", res.Units).
		Int("employees", res.Employees).
		Int("supervisors", res.Supervisors).
		Int("products", res.Products).
		Msg("datos de ejemplo cargados")
}
