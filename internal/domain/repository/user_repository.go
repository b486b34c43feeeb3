package repository

import (
	"context"

	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	// Create persiste un usuario. Devuelve domain.ErrDuplicate si (username, unit_id) ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsernameAndUnit busca por credenciales; unitID vacío corresponde al admin.
	GetByUsernameAndUnit(ctx context.Context, username, unitID string) (*entity.User, error)
	// UpdatePassword guarda un nuevo hash. Devuelve domain.ErrUserNotFound si no existe.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ListByUnitAndRole(ctx context.Context, unitID, role string, limit, offset int) ([]*entity.User, error)
	// DeleteInUnit borra el usuario solo si pertenece a la unidad y tiene el rol indicado.
	DeleteInUnit(ctx context.Context, id, unitID, role string) (bool, error)
}
