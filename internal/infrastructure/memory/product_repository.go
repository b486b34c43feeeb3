package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository. Clave (id, unit_id).
type ProductRepo struct {
	s  *Store
	tx *state
}

// NewProductRepository construye el repo sobre el store.
func NewProductRepository(s *Store) *ProductRepo { return s.Products() }

// checkInsert aplica las mismas restricciones que el schema de postgres.
func checkInsert(st *state, p *entity.Product) error {
	if _, ok := st.units[p.UnitID]; !ok {
		return domain.ErrUnitNotFound
	}
	if _, ok := st.products[productKey{p.ID, p.UnitID}]; ok {
		return domain.ErrDuplicate
	}
	if p.Quantity < 0 || p.SoldQuantity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.s.update(r.tx, func(st *state) error {
		if err := checkInsert(st, product); err != nil {
			return err
		}
		cp := *product
		st.products[productKey{cp.ID, cp.UnitID}] = &cp
		return nil
	})
}

func (r *ProductRepo) CreateMany(_ context.Context, products []*entity.Product) error {
	return r.s.update(r.tx, func(st *state) error {
		seen := map[productKey]bool{}
		for _, p := range products {
			if err := checkInsert(st, p); err != nil {
				return err
			}
			k := productKey{p.ID, p.UnitID}
			if seen[k] {
				return domain.ErrDuplicate
			}
			seen[k] = true
		}
		for _, p := range products {
			cp := *p
			st.products[productKey{cp.ID, cp.UnitID}] = &cp
		}
		return nil
	})
}

func (r *ProductRepo) Get(_ context.Context, id, unitID string) (*entity.Product, error) {
	var out *entity.Product
	r.s.view(r.tx, func(st *state) {
		if unitID != "" {
			if p, ok := st.products[productKey{id, unitID}]; ok {
				cp := *p
				out = &cp
			}
			return
		}
		for k, p := range st.products {
			if k.id == id && (out == nil || k.unitID < out.UnitID) {
				cp := *p
				out = &cp
			}
		}
	})
	return out, nil
}

func (r *ProductRepo) List(ctx context.Context, unitID string, limit, offset int) ([]*entity.Product, error) {
	return r.Search(ctx, repository.ProductFilter{UnitID: unitID, Limit: limit, Offset: offset})
}

func (r *ProductRepo) Search(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	r.s.view(r.tx, func(st *state) {
		for _, p := range st.products {
			if matches(p, f) {
				cp := *p
				list = append(list, &cp)
			}
		}
	})
	byKey := func(a, b *entity.Product) int {
		return cmp.Or(cmp.Compare(a.UnitID, b.UnitID), cmp.Compare(a.ID, b.ID))
	}
	sign := 1
	if f.Descending {
		sign = -1
	}
	switch f.OrderField {
	case repository.OrderByName:
		slices.SortFunc(list, func(a, b *entity.Product) int {
			return cmp.Or(sign*cmp.Compare(a.Name, b.Name), byKey(a, b))
		})
	case repository.OrderByQuantity:
		slices.SortFunc(list, func(a, b *entity.Product) int {
			return cmp.Or(sign*cmp.Compare(a.Quantity, b.Quantity), byKey(a, b))
		})
	default:
		slices.SortFunc(list, byKey)
	}
	return page(list, f.Limit, f.Offset), nil
}

func matches(p *entity.Product, f repository.ProductFilter) bool {
	switch {
	case f.Name != "" && p.Name != f.Name:
		return false
	case f.ID != "" && p.ID != f.ID:
		return false
	case f.UnitID != "" && p.UnitID != f.UnitID:
		return false
	case f.MinQuantity != nil && p.Quantity < *f.MinQuantity:
		return false
	case f.MaxQuantity != nil && p.Quantity > *f.MaxQuantity:
		return false
	}
	return true
}

func (r *ProductRepo) UsedVolume(_ context.Context, unitID string) (decimal.Decimal, error) {
	used := decimal.Zero
	r.s.view(r.tx, func(st *state) {
		for k, p := range st.products {
			if k.unitID == unitID {
				used = used.Add(p.Footprint())
			}
		}
	})
	return used, nil
}

func (r *ProductRepo) Sell(_ context.Context, id, unitID string, n int, profit decimal.Decimal) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.update(r.tx, func(st *state) error {
		p, ok := st.products[productKey{id, unitID}]
		if !ok || p.Quantity < n {
			return nil
		}
		p.Quantity -= n
		p.SoldQuantity += n
		p.UnitGain = p.UnitGain.Add(profit)
		p.UpdatedAt = time.Now()
		cp := *p
		out = &cp
		return nil
	})
	return out, err
}

func (r *ProductRepo) Restock(_ context.Context, id, unitID string, n int, cost decimal.Decimal) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.update(r.tx, func(st *state) error {
		p, ok := st.products[productKey{id, unitID}]
		if !ok {
			return nil
		}
		if p.Quantity+n < 0 {
			return domain.ErrInvalidInput
		}
		p.Quantity += n
		p.UnitGain = p.UnitGain.Sub(cost)
		p.UpdatedAt = time.Now()
		cp := *p
		out = &cp
		return nil
	})
	return out, err
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.s.update(r.tx, func(st *state) error {
		p, ok := st.products[productKey{product.ID, product.UnitID}]
		if !ok {
			return domain.ErrProductNotFound
		}
		p.Name = product.Name
		p.Weight = product.Weight
		p.Volume = product.Volume
		p.Category = product.Category
		p.PurchasePrice = product.PurchasePrice
		p.SellingPrice = product.SellingPrice
		p.Manufacturer = product.Manufacturer
		p.UpdatedAt = product.UpdatedAt
		return nil
	})
}

func (r *ProductRepo) Delete(_ context.Context, id, unitID string) (bool, error) {
	deleted := false
	err := r.s.update(r.tx, func(st *state) error {
		k := productKey{id, unitID}
		if _, ok := st.products[k]; ok {
			delete(st.products, k)
			deleted = true
		}
		return nil
	})
	return deleted, err
}
