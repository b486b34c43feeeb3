// Package pdf implementa el reporte de inventario de una unidad en PDF (Maroto v2).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Unidad + ID           │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OCUPACIÓN: Capacidad / Ocupado / Libre / Balance            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | Categoría | Cant | Vend | Vol | Bal  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Piezas / Vendidas / Balance                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/application/ports"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.UnitReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.UnitReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateUnitReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateUnitReport(
	_ context.Context,
	unit *entity.Unit,
	summary dto.UnitSummaryResponse,
	products []*entity.Product,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario "+unit.Name, true).
		WithAuthor("logistics-api", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(unit, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(capacityRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(products) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("La unidad no tiene productos.", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		)))
	}
	m.AddRows(tableDetailRows(products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(unit *entity.Unit, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(unit.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Unidad: "+unit.ID, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// capacityRow: cuatro indicadores de ocupación en una fila.
func capacityRow(s dto.UnitSummaryResponse) core.Row {
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 6, Align: align.Center}),
		)
	}
	gainColor := colorPrimary
	if s.TotalGain.IsNegative() {
		gainColor = colorRed
	}
	return row.New(14).Add(
		cell("CAPACIDAD", formatNumber(s.Volume, 2), colorPrimary),
		cell("OCUPADO", formatNumber(s.UsedVolume, 2), colorPrimary),
		cell("LIBRE", formatNumber(s.FreeVolume, 2), colorPrimary),
		cell("BALANCE", "$"+formatNumber(s.TotalGain, 2), gainColor),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Left),
		h("Producto", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Vend.", 1, align.Right),
		h("Vol.", 1, align.Right),
		h("P. Venta", 1, align.Right),
		h("Balance", 2, align.Right),
	)
}

func tableDetailRows(products []*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, p := range products {
		result = append(result, row.New(7).Add(
			cell(p.ID, 1, align.Left),
			cell(p.Name, 3, align.Left),
			cell(nonEmpty(p.Category, "-"), 2, align.Left),
			cell(fmt.Sprintf("%d", p.Quantity), 1, align.Right),
			cell(fmt.Sprintf("%d", p.SoldQuantity), 1, align.Right),
			cell(formatNumber(p.Footprint(), 2), 1, align.Right),
			cell("$"+formatNumber(p.SellingPrice, 2), 1, align.Right),
			cell("$"+formatNumber(p.UnitGain, 2), 2, align.Right),
		))
	}
	return result
}

func totalsRow(s dto.UnitSummaryResponse) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(label("Productos:"), label("Piezas en stock:"), label("Piezas vendidas:")),
		col.New(3).Add(
			value(fmt.Sprintf("%d", s.ProductCount)),
			value(formatThousands(fmt.Sprintf("%d", s.TotalQuantity))),
			value(formatThousands(fmt.Sprintf("%d", s.TotalSold))),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatNumber: 1234567.5 → "1.234.567,50" (formato es-CO).
func formatNumber(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	out := sign + formatThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	return out
}

// formatThousands inserta puntos de miles en un string numérico sin signo.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
