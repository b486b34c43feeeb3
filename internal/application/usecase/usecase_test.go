package usecase_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-api/internal/application/auth"
	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/application/usecase"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/infrastructure/memory"
)

type fakeReports struct {
	summary dto.UnitSummaryResponse
	count   int
}

func (f *fakeReports) GenerateUnitReport(_ context.Context, _ *entity.Unit, s dto.UnitSummaryResponse, products []*entity.Product, _ time.Time) ([]byte, error) {
	f.summary = s
	f.count = len(products)
	return []byte("%PDF-fake"), nil
}

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Units().Create(ctx, &entity.Unit{ID: "u1", Name: "Norte", Volume: decimal.NewFromInt(100)}))
	require.NoError(t, s.Units().Create(ctx, &entity.Unit{ID: "u2", Name: "Sur", Volume: decimal.NewFromInt(100)}))
	return s
}

func ptr[T any](v T) *T { return &v }

// ── Users ─────────────────────────────────────────────────────────────────────

func TestUserUseCase_ProfileYChangePassword(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	hash, _ := auth.HashPassword("12")
	require.NoError(t, s.Users().Create(ctx, &entity.User{
		ID: "e1", Name: "John", Surname: "Smith", Username: "js", PasswordHash: hash, UnitID: "u1", Role: entity.RoleEmployee,
	}))
	uc := usecase.NewUserUseCase(s.Users())

	p, err := uc.Profile(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Norte", p.UnitName)

	_, err = uc.Profile(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.ErrorIs(t, uc.ChangePassword(ctx, "e1", dto.ChangePasswordRequest{OldPassword: "12"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.ChangePassword(ctx, "e1", dto.ChangePasswordRequest{OldPassword: "12", NewPassword: "12"}), domain.ErrSamePassword)
	assert.ErrorIs(t, uc.ChangePassword(ctx, "e1", dto.ChangePasswordRequest{OldPassword: "13", NewPassword: "nuevo"}), domain.ErrWrongPassword)
	require.NoError(t, uc.ChangePassword(ctx, "e1", dto.ChangePasswordRequest{OldPassword: "12", NewPassword: "nuevo"}))

	u, _ := s.Users().GetByID(ctx, "e1")
	assert.True(t, auth.CheckPassword(u.PasswordHash, "nuevo"))
}

// ── Employees ─────────────────────────────────────────────────────────────────

func TestEmployeeUseCase_CrearListarBorrar(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewEmployeeUseCase(s.Users(), s.Units())

	created, err := uc.Create(ctx, "u1", dto.CreateEmployeeRequest{Name: " Mary ", Surname: "Jacobs", Username: "mj", Password: "12"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, created.Role)
	assert.Equal(t, "Mary", created.Name)
	assert.Equal(t, "Norte", created.UnitName)

	_, err = uc.Create(ctx, "u1", dto.CreateEmployeeRequest{Name: "M", Surname: "J", Username: "mj", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, "u1", dto.CreateEmployeeRequest{Name: "M", Surname: " ", Username: "x", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, "u9", dto.CreateEmployeeRequest{Name: "M", Surname: "J", Username: "x", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)

	list, err := uc.ListByUnit(ctx, "u1", 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	_, err = uc.Get(ctx, "u2", created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "otra unidad")

	assert.ErrorIs(t, uc.Delete(ctx, "u2", created.ID), domain.ErrUserNotFound)
	require.NoError(t, uc.Delete(ctx, "u1", created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "u1", created.ID), domain.ErrUserNotFound)
}

func TestEmployeeUseCase_PasswordSinEspacios(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewEmployeeUseCase(s.Users(), s.Units())

	created, err := uc.Create(ctx, "u1", dto.CreateEmployeeRequest{Name: "Peter", Surname: "Wood", Username: "pw", Password: " pw "})
	require.NoError(t, err)
	u, err := s.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(u.PasswordHash, "pw"))
	assert.False(t, auth.CheckPassword(u.PasswordHash, " pw "))

	_, err = uc.Create(ctx, "u1", dto.CreateEmployeeRequest{Name: "A", Surname: "M", Username: "am", Password: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUseCase_NoBorraSupervisores(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "s1", Username: "bw", UnitID: "u1", Role: entity.RoleSupervisor}))
	uc := usecase.NewEmployeeUseCase(s.Users(), s.Units())
	assert.ErrorIs(t, uc.Delete(ctx, "u1", "s1"), domain.ErrUserNotFound)
}

// ── Units ─────────────────────────────────────────────────────────────────────

func TestUnitUseCase_CreateYSummary(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	reports := &fakeReports{}
	uc := usecase.NewUnitUseCase(s.Units(), s.Products(), reports)

	created, err := uc.Create(ctx, dto.CreateUnitRequest{Name: "Este", Volume: decimal.NewFromInt(50)})
	require.NoError(t, err)
	assert.Contains(t, created.ID, "u-")

	_, err = uc.Create(ctx, dto.CreateUnitRequest{ID: "u1", Name: "X", Volume: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, dto.CreateUnitRequest{Name: "X", Volume: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateUnitRequest{Name: "X", Volume: decimal.RequireFromString("0.00004")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "se redondea a cero")

	require.NoError(t, s.Products().Create(ctx, &entity.Product{
		ID: "p1", UnitID: "u1", Name: "pr1", Quantity: 4, SoldQuantity: 1, Volume: decimal.NewFromInt(3), UnitGain: decimal.NewFromInt(100),
	}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{
		ID: "p4", UnitID: "u1", Name: "pr4", Quantity: 7, SoldQuantity: 4, Volume: decimal.NewFromInt(2), UnitGain: decimal.NewFromInt(100),
	}))
	sum, err := uc.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.ProductCount)
	assert.Equal(t, 11, sum.TotalQuantity)
	assert.Equal(t, 5, sum.TotalSold)
	assert.True(t, decimal.NewFromInt(26).Equal(sum.UsedVolume))
	assert.True(t, decimal.NewFromInt(74).Equal(sum.FreeVolume))
	assert.True(t, decimal.NewFromInt(200).Equal(sum.TotalGain))

	_, err = uc.Summary(ctx, "u9")
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)

	doc, err := uc.Report(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Equal(t, 2, reports.count)
	assert.Equal(t, 11, reports.summary.TotalQuantity)
}

func TestUnitUseCase_Dashboard(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewUnitUseCase(s.Units(), s.Products(), nil)

	admin, err := uc.Dashboard(ctx, "a1", entity.RoleAdmin, "")
	require.NoError(t, err)
	assert.Len(t, admin.Units, 2)

	emp, err := uc.Dashboard(ctx, "e1", entity.RoleEmployee, "u2")
	require.NoError(t, err)
	require.Len(t, emp.Units, 1)
	assert.Equal(t, "Sur", emp.Units[0].Name)

	gone, err := uc.Dashboard(ctx, "e1", entity.RoleEmployee, "u9")
	require.NoError(t, err)
	assert.Empty(t, gone.Units)
}

// ── Products ──────────────────────────────────────────────────────────────────

func newProducts(t *testing.T) (*usecase.ProductUseCase, *memory.Store) {
	s := newStore(t)
	return usecase.NewProductUseCase(memory.NewTxRunner(s), s.Products(), s.Units()), s
}

func TestProductUseCase_CreateEnUnidadConCapacidad(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProducts(t)

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		ID: "p1", UnitID: "u1", Name: "pr1", Quantity: 30, Volume: decimal.NewFromInt(3),
		PurchasePrice: decimal.NewFromInt(100), SellingPrice: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 30, out[0].Quantity)

	// quedan 10 de volumen libre
	_, err = uc.Create(ctx, dto.CreateProductRequest{ID: "p2", UnitID: "u1", Name: "pr2", Quantity: 6, Volume: decimal.NewFromInt(2)})
	assert.ErrorIs(t, err, domain.ErrProductDoesNotFit)

	_, err = uc.Create(ctx, dto.CreateProductRequest{ID: "p1", UnitID: "u1", Name: "otra", Quantity: 0, Volume: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateProductRequest{ID: "p3", UnitID: "u9", Name: "pr3"})
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)

	_, err = uc.Create(ctx, dto.CreateProductRequest{ID: "p3", UnitID: "u1", Name: "pr3", Volume: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_RedondeaALaEscalaDeLaBase(t *testing.T) {
	ctx := context.Background()
	uc, s := newProducts(t)

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		ID: "p1", UnitID: "u1", Name: "pr1", Quantity: 300,
		Volume:        decimal.RequireFromString("0.33334"),
		Weight:        decimal.RequireFromString("1.23456"),
		PurchasePrice: decimal.RequireFromString("10.005"),
		SellingPrice:  decimal.RequireFromString("12.499"),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "0.3333", out[0].Volume.String())
	assert.Equal(t, "1.2346", out[0].Weight.String())
	assert.Equal(t, "10.01", out[0].PurchasePrice.String())
	assert.Equal(t, "12.5", out[0].SellingPrice.String())

	stored, err := s.Products().Get(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.True(t, stored.Volume.Equal(out[0].Volume))

	// 300 * 0.33334 no cabe en 100; con 0.3333 ocupa 99.99.
	used, err := s.Products().UsedVolume(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "99.99", used.String())

	updated, err := uc.Update(ctx, "p1", "u1", dto.UpdateProductRequest{SellingPrice: ptr(decimal.RequireFromString("20.555"))})
	require.NoError(t, err)
	assert.Equal(t, "20.56", updated.SellingPrice.String())
}

func TestProductUseCase_TopeDePiezas(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProducts(t)

	_, err := uc.Create(ctx, dto.CreateProductRequest{ID: "p1", UnitID: "u1", Name: "pr1", Quantity: entity.MaxPieces + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Search(ctx, dto.SearchProductsRequest{MaxQuantity: ptr(entity.MaxPieces + 1)}, 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_CreateEnTodasLasUnidades(t *testing.T) {
	ctx := context.Background()
	uc, s := newProducts(t)

	out, err := uc.Create(ctx, dto.CreateProductRequest{ID: "p9", Name: "pr9", Quantity: 50, Volume: decimal.NewFromInt(1)})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, 0, p.Quantity)
		assert.True(t, p.UnitGain.IsZero())
	}
	p, _ := s.Products().Get(ctx, "p9", "u2")
	require.NotNil(t, p)
}

func TestProductUseCase_GetListDelete(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProducts(t)
	_, err := uc.Create(ctx, dto.CreateProductRequest{ID: "p1", Name: "pr1"})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, "p1", "")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UnitID)

	_, err = uc.GetByID(ctx, "p1", "u9")
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)

	all, err := uc.List(ctx, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	require.NoError(t, uc.Delete(ctx, "p1", "u2"))
	_, err = uc.GetByID(ctx, "p1", "u2")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "p1", "u2"), domain.ErrProductNotFound)
}

func TestProductUseCase_Search(t *testing.T) {
	ctx := context.Background()
	uc, s := newProducts(t)
	for i, q := range []int{4, 5, 6} {
		require.NoError(t, s.Products().Create(ctx, &entity.Product{
			ID: "p" + string(rune('1'+i)), UnitID: "u1", Name: "pr" + string(rune('1'+i)), Quantity: q,
		}))
	}

	res, err := uc.Search(ctx, dto.SearchProductsRequest{MinQuantity: ptr(5), OrderField: "quantity", OrderType: "descending"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 6, res.Items[0].Quantity)

	res, err = uc.Search(ctx, dto.SearchProductsRequest{MaxQuantity: ptr(4)}, 0, 0)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	res, err = uc.Search(ctx, dto.SearchProductsRequest{Name: "pr2"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	_, err = uc.Search(ctx, dto.SearchProductsRequest{MinQuantity: ptr(-1)}, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Search(ctx, dto.SearchProductsRequest{MinQuantity: ptr(6), MaxQuantity: ptr(5)}, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateConCambioDeVolumen(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProducts(t)
	_, err := uc.Create(ctx, dto.CreateProductRequest{ID: "p1", UnitID: "u1", Name: "pr1", Quantity: 10, Volume: decimal.NewFromInt(5)})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "p1", "u1", dto.UpdateProductRequest{Name: ptr("nuevo"), Volume: ptr(decimal.NewFromInt(10))})
	require.NoError(t, err)
	assert.Equal(t, "nuevo", out.Name)
	assert.Equal(t, 10, out.Quantity)

	_, err = uc.Update(ctx, "p1", "u1", dto.UpdateProductRequest{Volume: ptr(decimal.NewFromInt(11))})
	assert.ErrorIs(t, err, domain.ErrProductDoesNotFit)

	_, err = uc.Update(ctx, "p1", "u1", dto.UpdateProductRequest{Name: ptr(" ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "zz", "u1", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
