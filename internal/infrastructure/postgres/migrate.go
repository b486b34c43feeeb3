package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate crea las tablas e índices si no existen. Es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}

// Reset vacía todas las tablas (usado por cmd/seed).
func Reset(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, `TRUNCATE products, users, units`); err != nil {
		return fmt.Errorf("vaciar tablas: %w", err)
	}
	return nil
}
