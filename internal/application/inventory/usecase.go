package inventory

import (
	"context"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/inventory"
	"github.com/jhoicas/logistics-api/internal/domain/repository"
)

// StockUseCase vende y repone productos de una unidad.
// La venta es una sola escritura condicional; la compra corre en una transacción con la
// fila de la unidad bloqueada (SELECT FOR UPDATE) para que dos compras no la desborden.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	unitRepo    repository.UnitRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, productRepo: productRepo, unitRepo: unitRepo}
}

func (uc *StockUseCase) checkUnit(ctx context.Context, unitID string) error {
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

func (uc *StockUseCase) find(ctx context.Context, products repository.ProductRepository, id, unitID string) (*entity.Product, error) {
	product, err := products.Get(ctx, id, unitID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// Sell vende n piezas: quantity -= n, sold_quantity += n, unit_gain += ganancia.
// Si no hay n piezas en stock no se modifica nada y devuelve ErrInsufficientQuantity.
func (uc *StockUseCase) Sell(ctx context.Context, id, unitID string, n int) (*dto.StockChangeResponse, error) {
	if err := uc.checkUnit(ctx, unitID); err != nil {
		return nil, err
	}
	before, err := uc.find(ctx, uc.productRepo, id, unitID)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > entity.MaxPieces {
		return nil, domain.ErrInsufficientQuantity
	}
	after, err := uc.productRepo.Sell(ctx, id, before.UnitID, n, before.Profit(n))
	if err != nil {
		return nil, err
	}
	if after == nil {
		return nil, domain.ErrInsufficientQuantity
	}
	return &dto.StockChangeResponse{Before: dto.FromProduct(before), After: dto.FromProduct(after)}, nil
}

// Buy repone n piezas si caben en el volumen libre de la unidad: quantity += n,
// unit_gain -= precio de compra * n.
func (uc *StockUseCase) Buy(ctx context.Context, id, unitID string, n int) (*dto.StockChangeResponse, error) {
	if n <= 0 || n > entity.MaxPieces {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkUnit(ctx, unitID); err != nil {
		return nil, err
	}
	located, err := uc.find(ctx, uc.productRepo, id, unitID)
	if err != nil {
		return nil, err
	}

	var out dto.StockChangeResponse
	err = uc.txRunner.Run(ctx, func(units repository.UnitRepository, products repository.ProductRepository) error {
		unit, err := units.LockByID(ctx, located.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrUnitNotFound
		}
		// Releer con la unidad bloqueada.
		before, err := uc.find(ctx, products, id, located.UnitID)
		if err != nil {
			return err
		}
		used, err := products.UsedVolume(ctx, unit.ID)
		if err != nil {
			return err
		}
		if n > entity.MaxPieces-before.Quantity {
			return domain.ErrInvalidInput
		}
		if !inventory.Fits(unit, used, before.VolumeFor(n)) {
			return domain.ErrProductDoesNotFit
		}
		after, err := products.Restock(ctx, id, unit.ID, n, before.Cost(n))
		if err != nil {
			return err
		}
		if after == nil {
			return domain.ErrProductNotFound
		}
		out = dto.StockChangeResponse{Before: dto.FromProduct(before), After: dto.FromProduct(after)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
