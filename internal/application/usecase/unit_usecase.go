package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/application/ports"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/inventory"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

// UnitUseCase casos de uso de unidades: alta, consulta, resumen y reporte.
type UnitUseCase struct {
	unitRepo    repository.UnitRepository
	productRepo repository.ProductRepository
	reports     ports.UnitReportGenerator
	now         func() time.Time
}

// NewUnitUseCase construye el caso de uso. reports puede ser nil si no se sirve el PDF.
func NewUnitUseCase(
	unitRepo repository.UnitRepository,
	productRepo repository.ProductRepository,
	reports ports.UnitReportGenerator,
) *UnitUseCase {
	return &UnitUseCase{unitRepo: unitRepo, productRepo: productRepo, reports: reports, now: time.Now}
}

// Create crea una unidad. Sin ID se genera uno "u-<uuid>".
func (uc *UnitUseCase) Create(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	name := strings.TrimSpace(in.Name)
	volume := in.Volume.Round(entity.MeasureScale)
	if name == "" || !volume.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = "u-" + uuid.New().String()
	}
	now := uc.now()
	unit := &entity.Unit{ID: id, Name: name, Volume: volume, CreatedAt: now, UpdatedAt: now}
	if err := uc.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	out := dto.FromUnit(unit)
	return &out, nil
}

func (uc *UnitUseCase) get(ctx context.Context, id string) (*entity.Unit, error) {
	unit, err := uc.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrUnitNotFound
	}
	return unit, nil
}

// GetByID obtiene una unidad por ID.
func (uc *UnitUseCase) GetByID(ctx context.Context, id string) (*dto.UnitResponse, error) {
	unit, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromUnit(unit)
	return &out, nil
}

// List lista unidades con paginación.
func (uc *UnitUseCase) List(ctx context.Context, limit, offset int) (*dto.UnitListResponse, error) {
	list, err := uc.unitRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.FromUnit(u))
	}
	return &dto.UnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Summary ocupación y balance de la unidad.
func (uc *UnitUseCase) Summary(ctx context.Context, id string) (*dto.UnitSummaryResponse, error) {
	unit, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx, unit.ID, 0, 0)
	if err != nil {
		return nil, err
	}
	s := summarize(unit, products)
	return &s, nil
}

func summarize(unit *entity.Unit, products []*entity.Product) dto.UnitSummaryResponse {
	used := inventory.UsedVolume(products)
	gain := decimal.Zero
	s := dto.UnitSummaryResponse{
		UnitID:       unit.ID,
		Name:         unit.Name,
		Volume:       unit.Volume,
		UsedVolume:   used,
		FreeVolume:   unit.FreeVolume(used),
		ProductCount: len(products),
	}
	for _, p := range products {
		s.TotalQuantity += p.Quantity
		s.TotalSold += p.SoldQuantity
		gain = gain.Add(p.UnitGain)
	}
	s.TotalGain = gain
	return s
}

// Dashboard pantalla de inicio: el admin ve todas las unidades, el resto solo la suya.
// Si la unidad del usuario ya no existe la lista queda vacía.
func (uc *UnitUseCase) Dashboard(ctx context.Context, userID, role, unitID string) (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{UserID: userID, Role: role, UnitID: unitID, Units: []dto.UnitSummaryResponse{}}
	var ids []string
	if role == entity.RoleAdmin {
		all, err := uc.unitRepo.ListIDs(ctx)
		if err != nil {
			return nil, err
		}
		ids = all
	} else if unitID != "" {
		ids = []string{unitID}
	}
	for _, id := range ids {
		s, err := uc.Summary(ctx, id)
		if errors.Is(err, domain.ErrUnitNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out.Units = append(out.Units, *s)
	}
	return out, nil
}

// Report genera el PDF de inventario de la unidad.
func (uc *UnitUseCase) Report(ctx context.Context, id string) ([]byte, error) {
	if uc.reports == nil {
		return nil, domain.ErrNotFound
	}
	unit, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx, unit.ID, 0, 0)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateUnitReport(ctx, unit, summarize(unit, products), products, uc.now())
}
