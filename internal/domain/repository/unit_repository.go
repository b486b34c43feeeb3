package repository

import (
	"context"

	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit (DIP).
type UnitRepository interface {
	// Create persiste una unidad. Devuelve domain.ErrDuplicate si el id ya existe.
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, id string) (*entity.Unit, error)
	// LockByID igual que GetByID pero, dentro de una transacción, bloquea la fila hasta el commit.
	LockByID(ctx context.Context, id string) (*entity.Unit, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Unit, error)
	ListIDs(ctx context.Context) ([]string, error)
}
