package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

// Campos por los que se puede ordenar una búsqueda.
const (
	OrderByName     = "name"
	OrderByQuantity = "quantity"
)

// ProductFilter criterios de búsqueda de productos. Los campos vacíos o nil no filtran.
type ProductFilter struct {
	Name        string
	ID          string
	UnitID      string
	MinQuantity *int
	MaxQuantity *int
	OrderField  string // "", OrderByName u OrderByQuantity
	Descending  bool
	Limit       int // 0 = sin límite
	Offset      int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Un producto se identifica por (id, unit_id).
type ProductRepository interface {
	// Create persiste un producto. Devuelve domain.ErrDuplicate si (id, unit_id) ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// CreateMany persiste todos o ninguno.
	CreateMany(ctx context.Context, products []*entity.Product) error
	// Get busca el producto en la unidad; con unitID vacío devuelve la primera fila con ese id
	// (orden por unit_id).
	Get(ctx context.Context, id, unitID string) (*entity.Product, error)
	// List lista productos de una unidad, o de todas si unitID es vacío.
	List(ctx context.Context, unitID string, limit, offset int) ([]*entity.Product, error)
	Search(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	// UsedVolume devuelve Σ quantity*volume de los productos de la unidad.
	UsedVolume(ctx context.Context, unitID string) (decimal.Decimal, error)
	// Sell descuenta n piezas solo si quantity >= n, suma n a sold_quantity y profit a unit_gain.
	// Devuelve (nil, nil) si no hay stock suficiente o el producto no existe.
	Sell(ctx context.Context, id, unitID string, n int, profit decimal.Decimal) (*entity.Product, error)
	// Restock suma n piezas y resta cost de unit_gain. Devuelve (nil, nil) si el producto no existe.
	Restock(ctx context.Context, id, unitID string, n int, cost decimal.Decimal) (*entity.Product, error)
	// Update modifica los campos descriptivos (no quantity, sold_quantity ni unit_gain).
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id, unitID string) (bool, error)
}
