package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUnitRequest entrada para crear una unidad. ID opcional: se genera si viene vacío.
type CreateUnitRequest struct {
	ID     string          `json:"id" validate:"omitempty,max=100"`
	Name   string          `json:"name" validate:"required,min=1,max=200"`
	Volume decimal.Decimal `json:"volume" swaggertype:"number"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Volume    decimal.Decimal `json:"volume" swaggertype:"number"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UnitListResponse lista paginada de unidades.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// UnitSummaryResponse resumen de ocupación y balance de una unidad.
type UnitSummaryResponse struct {
	UnitID        string          `json:"unit_id"`
	Name          string          `json:"name"`
	Volume        decimal.Decimal `json:"volume" swaggertype:"number"`
	UsedVolume    decimal.Decimal `json:"used_volume" swaggertype:"number"`
	FreeVolume    decimal.Decimal `json:"free_volume" swaggertype:"number"`
	ProductCount  int             `json:"product_count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalSold     int             `json:"total_sold"`
	TotalGain     decimal.Decimal `json:"total_gain" swaggertype:"number"`
}

// DashboardResponse pantalla de inicio: quién es el usuario y el estado de sus unidades.
type DashboardResponse struct {
	UserID string                `json:"user_id"`
	Role   string                `json:"role"`
	UnitID string                `json:"unit_id"`
	Units  []UnitSummaryResponse `json:"units"`
}
