// Package seed carga el set de datos de ejemplo: 3 unidades, 6 empleados,
// 3 supervisores y 5 productos. Todas las contraseñas son "12".
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/application/auth"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

// SamplePassword contraseña de todos los usuarios de ejemplo.
const SamplePassword = "12"

// Result cuántos registros se insertaron de cada tipo.
type Result struct {
	Units       int
	Employees   int
	Supervisors int
	Products    int
}

type person struct {
	name, surname, username, unitID string
}

var (
	sampleEmployees = []person{
		{"John", "Smith", "js", "u1"},
		{"Mary", "Jacobs", "mj", "u1"},
		{"Jim", "Halpert", "jh", "u2"},
		{"Pam", "Wesley", "pw", "u2"},
		{"Andrew", "Mathews", "am", "u3"},
		{"Peter", "Parker", "pp", "u3"},
	}
	sampleSupervisors = []person{
		{"Bruce", "Wayne", "bw", "u1"},
		{"Will", "Jacub", "wj", "u2"},
		{"Mary", "Stokes", "ms", "u3"},
	}
)

func sampleProducts(now time.Time) []*entity.Product {
	d := decimal.NewFromInt
	rows := []struct {
		id, unitID, name, category string
		qty, sold                  int
		weight, volume, buy, sell  int64
	}{
		{"p1", "u1", "pr1", "Electronics", 4, 1, 12, 3, 100, 150},
		{"p2", "u2", "pr2", "Clothing", 5, 2, 5, 2, 20, 50},
		{"p3", "u3", "pr3", "Book", 6, 3, 3, 1, 10, 20},
		{"p4", "u1", "pr4", "Electronics", 7, 4, 12, 2, 30, 40},
		{"p5", "u1", "pr5", "Electronics", 8, 5, 12, 3, 40, 50},
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, &entity.Product{
			ID: r.id, UnitID: r.unitID, Name: r.name, Category: r.category,
			Quantity: r.qty, SoldQuantity: r.sold,
			Weight: d(r.weight), Volume: d(r.volume),
			PurchasePrice: d(r.buy), SellingPrice: d(r.sell),
			Manufacturer: "Acme", UnitGain: d(100),
			CreatedAt: now, UpdatedAt: now,
		})
	}
	return out
}

// Load inserta el set de ejemplo con los repos dados. No vacía nada antes:
// sobre datos existentes devuelve el ErrDuplicate del repositorio.
func Load(
	ctx context.Context,
	units repository.UnitRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
) (Result, error) {
	var res Result
	now := time.Now()

	for i := 1; i <= 3; i++ {
		u := &entity.Unit{
			ID:        fmt.Sprintf("u%d", i),
			Name:      fmt.Sprintf("unit_%d", i),
			Volume:    decimal.NewFromInt(100),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := units.Create(ctx, u); err != nil {
			return res, fmt.Errorf("unidad %s: %w", u.ID, err)
		}
		res.Units++
	}

	hash, err := auth.HashPassword(SamplePassword)
	if err != nil {
		return res, err
	}
	addUsers := func(people []person, role string, count *int) error {
		for _, p := range people {
			err := users.Create(ctx, &entity.User{
				ID: uuid.New().String(), Name: p.name, Surname: p.surname,
				Username: p.username, PasswordHash: hash, UnitID: p.unitID, Role: role,
				CreatedAt: now, UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("usuario %s: %w", p.username, err)
			}
			*count++
		}
		return nil
	}
	if err := addUsers(sampleEmployees, entity.RoleEmployee, &res.Employees); err != nil {
		return res, err
	}
	if err := addUsers(sampleSupervisors, entity.RoleSupervisor, &res.Supervisors); err != nil {
		return res, err
	}

	list := sampleProducts(now)
	if err := products.CreateMany(ctx, list); err != nil {
		return res, fmt.Errorf("productos: %w", err)
	}
	res.Products = len(list)
	return res, nil
}
