package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto almacenado en una unidad.
// La identidad es (ID, UnitID): el mismo producto puede existir una vez por unidad.
// UnitGain es el balance acumulado del producto en la unidad (ganancia por ventas menos
// lo pagado al reponer).
type Product struct {
	ID            string
	UnitID        string
	Name          string
	Quantity      int
	SoldQuantity  int
	Weight        decimal.Decimal
	Volume        decimal.Decimal // volumen de una pieza
	Category      string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Manufacturer  string
	UnitGain      decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Escalas de las columnas NUMERIC y tope de piezas (columna INTEGER).
const (
	MoneyScale   = 2
	MeasureScale = 4
	MaxPieces    = math.MaxInt32
)

// Round deja precios y medidas en la escala que guarda la base de datos.
func (p *Product) Round() {
	p.Weight = p.Weight.Round(MeasureScale)
	p.Volume = p.Volume.Round(MeasureScale)
	p.PurchasePrice = p.PurchasePrice.Round(MoneyScale)
	p.SellingPrice = p.SellingPrice.Round(MoneyScale)
	p.UnitGain = p.UnitGain.Round(MoneyScale)
}

// Profit ganancia de vender n piezas: (precio de venta - precio de compra) * n.
func (p *Product) Profit(n int) decimal.Decimal {
	return p.SellingPrice.Sub(p.PurchasePrice).Mul(decimal.NewFromInt(int64(n)))
}

// Cost lo que cuesta comprar n piezas. Se resta de UnitGain al reponer.
func (p *Product) Cost(n int) decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(n)))
}

// Footprint volumen que ocupa el stock actual en la unidad.
func (p *Product) Footprint() decimal.Decimal {
	return p.Volume.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// VolumeFor volumen que ocuparían n piezas.
func (p *Product) VolumeFor(n int) decimal.Decimal {
	return p.Volume.Mul(decimal.NewFromInt(int64(n)))
}
