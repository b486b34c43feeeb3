package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s  *Store
	tx *state
}

// NewUserRepository construye el repo sobre el store.
func NewUserRepository(s *Store) *UserRepo { return s.Users() }

// withUnitName copia el usuario y completa UnitName como lo hace el LEFT JOIN de postgres.
func withUnitName(st *state, u *entity.User) *entity.User {
	cp := *u
	cp.UnitName = ""
	if unit, ok := st.units[u.UnitID]; ok {
		cp.UnitName = unit.Name
	}
	return &cp
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.s.update(r.tx, func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, u := range st.users {
			if u.Username == user.Username && u.UnitID == user.UnitID {
				return domain.ErrDuplicate
			}
		}
		cp := *user
		cp.UnitName = ""
		st.users[user.ID] = &cp
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	r.s.view(r.tx, func(st *state) {
		if u, ok := st.users[id]; ok {
			out = withUnitName(st, u)
		}
	})
	return out, nil
}

func (r *UserRepo) GetByUsernameAndUnit(_ context.Context, username, unitID string) (*entity.User, error) {
	var out *entity.User
	r.s.view(r.tx, func(st *state) {
		for _, u := range st.users {
			if u.Username == username && u.UnitID == unitID {
				out = withUnitName(st, u)
				return
			}
		}
	})
	return out, nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	return r.s.update(r.tx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.PasswordHash = passwordHash
		return nil
	})
}

func (r *UserRepo) ListByUnitAndRole(_ context.Context, unitID, role string, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	r.s.view(r.tx, func(st *state) {
		for _, u := range st.users {
			if u.UnitID == unitID && u.Role == role {
				list = append(list, withUnitName(st, u))
			}
		}
	})
	slices.SortFunc(list, func(a, b *entity.User) int {
		return cmp.Or(cmp.Compare(a.Surname, b.Surname), cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return page(list, limit, offset), nil
}

func (r *UserRepo) DeleteInUnit(_ context.Context, id, unitID, role string) (bool, error) {
	deleted := false
	err := r.s.update(r.tx, func(st *state) error {
		u, ok := st.users[id]
		if !ok || u.UnitID != unitID || u.Role != role {
			return nil
		}
		delete(st.users, id)
		deleted = true
		return nil
	})
	return deleted, err
}
