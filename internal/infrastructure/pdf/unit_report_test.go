package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistics-api/internal/application/dto"
	"github.com/jhoicas/logistics-api/internal/domain/entity"
)

func TestGenerateUnitReport_DevuelvePDF(t *testing.T) {
	unit := &entity.Unit{ID: "u1", Name: "Norte", Volume: decimal.NewFromInt(100)}
	products := []*entity.Product{
		{ID: "p1", UnitID: "u1", Name: "pr1", Quantity: 4, SoldQuantity: 1, Volume: decimal.NewFromInt(3),
			Category: "Electronics", SellingPrice: decimal.NewFromInt(150), UnitGain: decimal.NewFromInt(100)},
	}
	summary := dto.UnitSummaryResponse{
		UnitID: "u1", Name: "Norte", Volume: unit.Volume, UsedVolume: decimal.NewFromInt(12),
		FreeVolume: decimal.NewFromInt(88), ProductCount: 1, TotalQuantity: 4, TotalSold: 1,
		TotalGain: decimal.NewFromInt(100),
	}

	out, err := NewMarotoReportGenerator().GenerateUnitReport(context.Background(), unit, summary, products, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe empezar con la firma PDF")
}

func TestGenerateUnitReport_SinProductos(t *testing.T) {
	unit := &entity.Unit{ID: "u2", Name: "Sur", Volume: decimal.NewFromInt(50)}
	out, err := NewMarotoReportGenerator().GenerateUnitReport(context.Background(), unit, dto.UnitSummaryResponse{}, nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.234.567,50", formatNumber(decimal.RequireFromString("1234567.5"), 2))
	assert.Equal(t, "-20,00", formatNumber(decimal.NewFromInt(-20), 2))
	assert.Equal(t, "999", formatNumber(decimal.NewFromInt(999), 0))
	assert.Equal(t, "25.000", formatThousands("25000"))
}
