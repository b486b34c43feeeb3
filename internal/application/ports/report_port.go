package ports

import (
	"context"
	"time"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

// UnitReportGenerator define el puerto de salida para el reporte de inventario de una unidad.
// La aplicación solo conoce este contrato; el adaptador (maroto, mock) arma el documento.
type UnitReportGenerator interface {
	// GenerateUnitReport devuelve los bytes del documento (PDF) con el resumen y una fila por producto.
	GenerateUnitReport(
		ctx context.Context,
		unit *entity.Unit,
		summary dto.UnitSummaryResponse,
		products []*entity.Product,
		generatedAt time.Time,
	) ([]byte, error)
}
