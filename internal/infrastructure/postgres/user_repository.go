package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// unit_name no se persiste: se resuelve con un LEFT JOIN a units.
const userSelect = `
	SELECT u.id, u.name, u.surname, u.username, u.password_hash, u.unit_id, COALESCE(un.name, ''),
	       u.role, u.created_at, u.updated_at
	FROM users u LEFT JOIN units un ON un.id = u.unit_id`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, surname, username, password_hash, unit_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Surname, user.Username, user.PasswordHash, user.UnitID, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByUsernameAndUnit obtiene un usuario por username y unidad.
func (r *UserRepo) GetByUsernameAndUnit(ctx context.Context, username, unitID string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, userSelect+` WHERE u.username = $1 AND u.unit_id = $2`, username, unitID))
	if err != nil {
		return nil, fmt.Errorf("get user by credentials: %w", err)
	}
	return u, nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListByUnitAndRole lista los usuarios de una unidad con un rol, con paginación.
func (r *UserRepo) ListByUnitAndRole(ctx context.Context, unitID, role string, limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx,
		userSelect+` WHERE u.unit_id = $1 AND u.role = $2 ORDER BY u.surname, u.name LIMIT $3 OFFSET $4`,
		unitID, role, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Username, &u.PasswordHash, &u.UnitID,
			&u.UnitName, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// DeleteInUnit elimina el usuario si pertenece a la unidad y tiene el rol indicado.
func (r *UserRepo) DeleteInUnit(ctx context.Context, id, unitID, role string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM users WHERE id = $1 AND unit_id = $2 AND role = $3`, id, unitID, role)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// scanUser devuelve (nil, nil) si no hay fila.
func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Username, &u.PasswordHash, &u.UnitID,
		&u.UnitName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
