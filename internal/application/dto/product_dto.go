package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Con UnitID se inserta en esa unidad; sin UnitID (solo admin) se inserta en todas con stock 0.
type CreateProductRequest struct {
	ID            string          `json:"id" validate:"omitempty,max=100"`
	UnitID        string          `json:"unit_id" validate:"omitempty,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Quantity      int             `json:"quantity" validate:"min=0,max=2147483647"`
	Weight        decimal.Decimal `json:"weight" swaggertype:"number"`
	Volume        decimal.Decimal `json:"volume" swaggertype:"number"`
	Category      string          `json:"category" validate:"max=100"`
	PurchasePrice decimal.Decimal `json:"purchase_price" swaggertype:"number"`
	SellingPrice  decimal.Decimal `json:"selling_price" swaggertype:"number"`
	Manufacturer  string          `json:"manufacturer" validate:"max=200"`
}

// UpdateProductRequest entrada para actualizar un producto (sin quantity, sold_quantity ni unit_gain).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Weight        *decimal.Decimal `json:"weight" swaggertype:"number"`
	Volume        *decimal.Decimal `json:"volume" swaggertype:"number"`
	Category      *string          `json:"category" validate:"omitempty,max=100"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" swaggertype:"number"`
	SellingPrice  *decimal.Decimal `json:"selling_price" swaggertype:"number"`
	Manufacturer  *string          `json:"manufacturer" validate:"omitempty,max=200"`
}

// SearchProductsRequest criterios de búsqueda. Los campos vacíos no filtran.
// OrderField: name | quantity (otro valor = sin orden). OrderType: descending | ascending.
type SearchProductsRequest struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	UnitID      string `json:"unit_id"`
	MinQuantity *int   `json:"min_quantity"`
	MaxQuantity *int   `json:"max_quantity"`
	OrderField  string `json:"order_field"`
	OrderType   string `json:"order_type"`
}

// StockChangeRequest cantidad a vender o comprar. UnitID solo lo usa el admin.
type StockChangeRequest struct {
	Quantity int    `json:"quantity" validate:"max=2147483647"`
	UnitID   string `json:"unit_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	UnitID        string          `json:"unit_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	SoldQuantity  int             `json:"sold_quantity"`
	Weight        decimal.Decimal `json:"weight" swaggertype:"number"`
	Volume        decimal.Decimal `json:"volume" swaggertype:"number"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price" swaggertype:"number"`
	SellingPrice  decimal.Decimal `json:"selling_price" swaggertype:"number"`
	Manufacturer  string          `json:"manufacturer"`
	UnitGain      decimal.Decimal `json:"unit_gain" swaggertype:"number"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockChangeResponse estado del producto antes y después de vender o comprar.
type StockChangeResponse struct {
	Before ProductResponse `json:"before"`
	After  ProductResponse `json:"after"`
}
