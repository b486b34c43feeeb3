package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitColumns = `id, name, volume, created_at, updated_at`

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para unidades.
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una nueva unidad.
func (r *UnitRepo) Create(ctx context.Context, unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, name, volume, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, unit.ID, unit.Name, unit.Volume, unit.CreatedAt, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *UnitRepo) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	return r.get(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1`, id)
}

// LockByID obtiene la unidad con SELECT ... FOR UPDATE. Solo tiene efecto dentro de una tx.
func (r *UnitRepo) LockByID(ctx context.Context, id string) (*entity.Unit, error) {
	return r.get(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1 FOR UPDATE`, id)
}

func (r *UnitRepo) get(ctx context.Context, query, id string) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Volume, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// List lista unidades ordenadas por id con paginación.
func (r *UnitRepo) List(ctx context.Context, limit, offset int) ([]*entity.Unit, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+unitColumns+` FROM units ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Volume, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListIDs devuelve los ids de todas las unidades.
func (r *UnitRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM units ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list unit ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan unit ids: %w", err)
	}
	return ids, nil
}
