package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/logistics-api/internal/domain/entity"
	"github.com/jhoicas/logistics-api/internal/domain/inventory"
)

func product(qty int, volume int64) *entity.Product {
	return &entity.Product{Quantity: qty, Volume: decimal.NewFromInt(volume)}
}

func TestUsedVolume_SumaCantidadPorVolumen(t *testing.T) {
	// p1, p4 y p5 de la unidad u1 en los datos de ejemplo: 4*3 + 7*2 + 8*3 = 50
	used := inventory.UsedVolume([]*entity.Product{product(4, 3), product(7, 2), product(8, 3)})
	assert.True(t, decimal.NewFromInt(50).Equal(used), "ocupado = %s", used)
}

func TestUsedVolume_SinProductos(t *testing.T) {
	assert.True(t, inventory.UsedVolume(nil).IsZero())
}

func TestFits(t *testing.T) {
	unit := &entity.Unit{Volume: decimal.NewFromInt(100)}
	used := decimal.NewFromInt(50)

	assert.True(t, inventory.Fits(unit, used, decimal.NewFromInt(50)), "espacio exacto debe caber")
	assert.True(t, inventory.Fits(unit, used, decimal.Zero))
	assert.False(t, inventory.Fits(unit, used, decimal.NewFromInt(51)))
}

func TestFits_Decimales(t *testing.T) {
	unit := &entity.Unit{Volume: decimal.RequireFromString("1.0")}
	used := decimal.RequireFromString("0.7")

	assert.True(t, inventory.Fits(unit, used, decimal.RequireFromString("0.3")),
		"0.7 + 0.3 debe caber exactamente en 1.0 sin error de coma flotante")
}
