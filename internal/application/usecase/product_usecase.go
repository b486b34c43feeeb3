package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/application/inventory"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	domaininv "github.com/jhoicas/logistics-api/internal/domain/inventory"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y búsqueda de productos. El stock cambia vía inventory.StockUseCase.
type ProductUseCase struct {
	txRunner    inventory.TxRunner
	productRepo repository.ProductRepository
	unitRepo    repository.UnitRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner inventory.TxRunner,
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, unitRepo: unitRepo}
}

func (uc *ProductUseCase) checkUnit(ctx context.Context, unitID string) error {
	if unitID == "" {
		return nil
	}
	unit, err := uc.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (uc *ProductUseCase) find(ctx context.Context, id, unitID string) (*entity.Product, error) {
	if err := uc.checkUnit(ctx, unitID); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.Get(ctx, id, unitID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// GetByID obtiene un producto. Con unitID lo busca en esa unidad; sin él, la primera fila con ese ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id, unitID string) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id, unitID)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista productos de la unidad, o de todas con unitID vacío.
func (uc *ProductUseCase) List(ctx context.Context, unitID string, limit, offset int) (*dto.ProductListResponse, error) {
	if err := uc.checkUnit(ctx, unitID); err != nil {
		return nil, err
	}
	list, err := uc.productRepo.List(ctx, unitID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: dto.FromProducts(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search filtra por nombre exacto, id, unidad y rango de cantidad.
// Cada cota es opcional; negativas o min > max son ErrInvalidInput.
func (uc *ProductUseCase) Search(ctx context.Context, in dto.SearchProductsRequest, limit, offset int) (*dto.ProductListResponse, error) {
	if in.MinQuantity != nil && *in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxQuantity != nil && *in.MaxQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if (in.MinQuantity != nil && *in.MinQuantity > entity.MaxPieces) ||
		(in.MaxQuantity != nil && *in.MaxQuantity > entity.MaxPieces) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinQuantity != nil && in.MaxQuantity != nil && *in.MinQuantity > *in.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	f := repository.ProductFilter{
		Name:        strings.TrimSpace(in.Name),
		ID:          strings.TrimSpace(in.ID),
		UnitID:      strings.TrimSpace(in.UnitID),
		MinQuantity: in.MinQuantity,
		MaxQuantity: in.MaxQuantity,
		Descending:  in.OrderType == "descending",
		Limit:       limit,
		Offset:      offset,
	}
	switch in.OrderField {
	case repository.OrderByName, repository.OrderByQuantity:
		f.OrderField = in.OrderField
	}
	list, err := uc.productRepo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: dto.FromProducts(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func validMeasures(values ...decimal.Decimal) bool {
	for _, v := range values {
		if v.IsNegative() {
			return false
		}
	}
	return true
}

// Create inserta el producto. Con unit_id en una sola unidad, comprobando que quepa;
// sin unit_id en todas las unidades con cantidad, vendidos y balance en cero.
// Precios y medidas se redondean a la escala de las columnas antes de calcular el volumen.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) ([]dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Quantity < 0 || in.Quantity > entity.MaxPieces ||
		!validMeasures(in.Weight, in.Volume, in.PurchasePrice, in.SellingPrice) {
		return nil, domain.ErrInvalidInput
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = "p-" + uuid.New().String()
	}
	now := time.Now()
	base := entity.Product{
		ID:            id,
		Name:          name,
		Weight:        in.Weight,
		Volume:        in.Volume,
		Category:      strings.TrimSpace(in.Category),
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Manufacturer:  strings.TrimSpace(in.Manufacturer),
		UnitGain:      decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	base.Round()

	unitID := strings.TrimSpace(in.UnitID)
	if unitID == "" {
		return uc.createInAllUnits(ctx, base)
	}

	product := base
	product.UnitID = unitID
	product.Quantity = in.Quantity
	err := uc.txRunner.Run(ctx, func(units repository.UnitRepository, products repository.ProductRepository) error {
		unit, err := units.LockByID(ctx, unitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrUnitNotFound
		}
		used, err := products.UsedVolume(ctx, unitID)
		if err != nil {
			return err
		}
		if !domaininv.Fits(unit, used, product.Footprint()) {
			return domain.ErrProductDoesNotFit
		}
		return products.Create(ctx, &product)
	})
	if err != nil {
		return nil, err
	}
	return []dto.ProductResponse{dto.FromProduct(&product)}, nil
}

func (uc *ProductUseCase) createInAllUnits(ctx context.Context, base entity.Product) ([]dto.ProductResponse, error) {
	ids, err := uc.unitRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, domain.ErrUnitNotFound
	}
	list := make([]*entity.Product, 0, len(ids))
	for _, unitID := range ids {
		p := base
		p.UnitID = unitID
		list = append(list, &p)
	}
	// Con stock cero no ocupa volumen: no hace falta el chequeo de capacidad.
	if err := uc.productRepo.CreateMany(ctx, list); err != nil {
		return nil, err
	}
	return dto.FromProducts(list), nil
}

// Update modifica los campos descriptivos. Si cambia el volumen por pieza se vuelve a
// comprobar que el stock actual quepa en la unidad.
func (uc *ProductUseCase) Update(ctx context.Context, id, unitID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	current, err := uc.find(ctx, id, unitID)
	if err != nil {
		return nil, err
	}
	var updated entity.Product
	err = uc.txRunner.Run(ctx, func(units repository.UnitRepository, products repository.ProductRepository) error {
		unit, err := units.LockByID(ctx, current.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrUnitNotFound
		}
		product, err := products.Get(ctx, id, current.UnitID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		oldFootprint := product.Footprint()
		if err := applyUpdate(product, in); err != nil {
			return err
		}
		product.Round()
		if product.Footprint().GreaterThan(oldFootprint) {
			used, err := products.UsedVolume(ctx, current.UnitID)
			if err != nil {
				return err
			}
			if !domaininv.Fits(unit, used.Sub(oldFootprint), product.Footprint()) {
				return domain.ErrProductDoesNotFit
			}
		}
		product.UpdatedAt = time.Now()
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		updated = *product
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(&updated)
	return &out, nil
}

func applyUpdate(p *entity.Product, in dto.UpdateProductRequest) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return domain.ErrInvalidInput
		}
		p.Name = name
	}
	for _, v := range []*decimal.Decimal{in.Weight, in.Volume, in.PurchasePrice, in.SellingPrice} {
		if v != nil && v.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Volume != nil {
		p.Volume = *in.Volume
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.PurchasePrice != nil {
		p.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		p.SellingPrice = *in.SellingPrice
	}
	if in.Manufacturer != nil {
		p.Manufacturer = strings.TrimSpace(*in.Manufacturer)
	}
	return nil
}

// Delete elimina el producto de la unidad.
func (uc *ProductUseCase) Delete(ctx context.Context, id, unitID string) error {
	product, err := uc.find(ctx, id, unitID)
	if err != nil {
		return err
	}
	deleted, err := uc.productRepo.Delete(ctx, id, product.UnitID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrProductNotFound
	}
	return nil
}
