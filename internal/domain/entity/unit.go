package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit representa una unidad de almacén: tiene personal, productos y un volumen de capacidad.
// Volume es la capacidad total; no se calcula a partir de los productos que contiene.
type Unit struct {
	ID        string
	Name      string
	Volume    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FreeVolume devuelve el espacio libre dado el volumen ya ocupado.
func (u *Unit) FreeVolume(used decimal.Decimal) decimal.Decimal {
	return u.Volume.Sub(used)
}
