package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación en memoria de UnitRepository.
type UnitRepo struct {
	s  *Store
	tx *state
}

// NewUnitRepository construye el repo sobre el store.
func NewUnitRepository(s *Store) *UnitRepo { return s.Units() }

func (r *UnitRepo) Create(_ context.Context, unit *entity.Unit) error {
	return r.s.update(r.tx, func(st *state) error {
		if _, ok := st.units[unit.ID]; ok {
			return domain.ErrDuplicate
		}
		u := *unit
		st.units[unit.ID] = &u
		return nil
	})
}

func (r *UnitRepo) GetByID(_ context.Context, id string) (*entity.Unit, error) {
	var out *entity.Unit
	r.s.view(r.tx, func(st *state) {
		if u, ok := st.units[id]; ok {
			cp := *u
			out = &cp
		}
	})
	return out, nil
}

// LockByID no necesita bloqueo adicional: TxRunner ya tiene el lock de escritura.
func (r *UnitRepo) LockByID(ctx context.Context, id string) (*entity.Unit, error) {
	return r.GetByID(ctx, id)
}

func (r *UnitRepo) List(_ context.Context, limit, offset int) ([]*entity.Unit, error) {
	var list []*entity.Unit
	r.s.view(r.tx, func(st *state) {
		for _, u := range st.units {
			cp := *u
			list = append(list, &cp)
		}
	})
	slices.SortFunc(list, func(a, b *entity.Unit) int { return strings.Compare(a.ID, b.ID) })
	return page(list, limit, offset), nil
}

func (r *UnitRepo) ListIDs(_ context.Context) ([]string, error) {
	var ids []string
	r.s.view(r.tx, func(st *state) {
		for id := range st.units {
			ids = append(ids, id)
		}
	})
	slices.Sort(ids)
	return ids, nil
}
