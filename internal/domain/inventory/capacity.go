package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

// UsedVolume implementa el cálculo de ocupación de una unidad (servicio de dominio).
// Ocupado = Σ (Cantidad * VolumenPieza) de los productos de la unidad.
func UsedVolume(products []*entity.Product) decimal.Decimal {
	used := decimal.Zero
	for _, p := range products {
		used = used.Add(p.Footprint())
	}
	return used
}

// Fits indica si extra cabe en la unidad: Volumen - Ocupado >= extra.
func Fits(unit *entity.Unit, used, extra decimal.Decimal) bool {
	return unit.FreeVolume(used).GreaterThanOrEqual(extra)
}
