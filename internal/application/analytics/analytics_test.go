package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/myland-api/internal/application/analytics"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble del repositorio de analítica
// ──────────────────────────────────────────────────────────────────────────────

type stubAnalyticsRepo struct {
	// totales devueltos para cualquier rango que empiece después del epoch
	// (mes en curso); el rango histórico devuelve allIncome/allProfit.
	monthIncome, monthProfit decimal.Decimal
	monthCount               int64
	allIncome, allProfit     decimal.Decimal
	allCount                 int64

	stockCount int64
	stockValue decimal.Decimal
	byShop     []repository.ShopIncomeResult
	reportRows []repository.SaleReportRow

	lastReportStart, lastReportEnd time.Time
}

func (r *stubAnalyticsRepo) GetSalesTotals(_ context.Context, start, _ time.Time) (decimal.Decimal, decimal.Decimal, int64, error) {
	if start.Year() <= 1970 {
		return r.allIncome, r.allProfit, r.allCount, nil
	}
	return r.monthIncome, r.monthProfit, r.monthCount, nil
}

func (r *stubAnalyticsRepo) GetIncomeByShop(context.Context) ([]repository.ShopIncomeResult, error) {
	return r.byShop, nil
}

func (r *stubAnalyticsRepo) GetStockValuation(context.Context) (int64, decimal.Decimal, error) {
	return r.stockCount, r.stockValue, nil
}

func (r *stubAnalyticsRepo) GetSalesReport(_ context.Context, start, end time.Time) ([]repository.SaleReportRow, error) {
	r.lastReportStart, r.lastReportEnd = start, end
	return r.reportRows, nil
}

type stubPDFGenerator struct {
	lastRows []repository.SaleReportRow
}

func (g *stubPDFGenerator) GenerateSalesReportPDF(_ context.Context, _, _ time.Time, rows []repository.SaleReportRow) ([]byte, error) {
	g.lastRows = rows
	return []byte("%PDF-1.7 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_AgregaTotalesYRedondea(t *testing.T) {
	repo := &stubAnalyticsRepo{
		monthIncome: decimal.RequireFromString("160.005"),
		monthProfit: decimal.RequireFromString("64.004"),
		monthCount:  4,
		allIncome:   decimal.NewFromInt(1200),
		allProfit:   decimal.NewFromInt(400),
		stockCount:  7,
		stockValue:  decimal.RequireFromString("352.129"),
		byShop: []repository.ShopIncomeResult{
			{ShopID: "s1", ShopName: "Tienda Centro", SalesCount: 3,
				TotalIncome: decimal.NewFromInt(100), TotalProfit: decimal.NewFromInt(30)},
			{ShopID: "direct", ShopName: "Venta directa", SalesCount: 1,
				TotalIncome: decimal.NewFromInt(60), TotalProfit: decimal.NewFromInt(34)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, out.MonthIncome.Equal(decimal.RequireFromString("160.01")),
		"ingreso del mes redondeado: %s", out.MonthIncome)
	assert.True(t, out.MonthProfit.Equal(decimal.RequireFromString("64.00")))
	assert.Equal(t, int64(4), out.MonthSalesCount)
	assert.True(t, out.TotalIncome.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, int64(7), out.IngredientCount)
	assert.True(t, out.StockValue.Equal(decimal.RequireFromString("352.13")))
	require.Len(t, out.IncomeByShop, 2)
	assert.Equal(t, "Venta directa", out.IncomeByShop[1].ShopName)
	assert.NotEmpty(t, out.DateLabel)
}

func TestDashboard_SinVentasDevuelveCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubAnalyticsRepo{})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.MonthIncome.IsZero())
	assert.True(t, out.TotalProfit.IsZero())
	assert.Empty(t, out.IncomeByShop)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_RangoExplicitoIncluyeDiaFinal(t *testing.T) {
	repo := &stubAnalyticsRepo{
		reportRows: []repository.SaleReportRow{{ProductName: "Torta"}},
	}
	gen := &stubPDFGenerator{}
	uc := analytics.NewSalesReportUseCase(repo, gen)

	out, err := uc.Generate(context.Background(), "2026-04-01", "2026-04-30")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.Len(t, gen.lastRows, 1)

	assert.Equal(t, 2026, repo.lastReportStart.Year())
	assert.Equal(t, time.April, repo.lastReportStart.Month())
	// El día final entra completo en el rango.
	assert.Equal(t, 30, repo.lastReportEnd.Day())
	assert.Equal(t, 23, repo.lastReportEnd.Hour())
}

func TestReport_SinFechasCubreTodoElHistorico(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	uc := analytics.NewSalesReportUseCase(repo, &stubPDFGenerator{})

	_, err := uc.Generate(context.Background(), "", "")
	require.NoError(t, err)
	assert.LessOrEqual(t, repo.lastReportStart.Year(), 1970)
	assert.True(t, repo.lastReportEnd.After(time.Now().Add(-time.Minute)))
}

func TestReport_FechasInvalidas(t *testing.T) {
	uc := analytics.NewSalesReportUseCase(&stubAnalyticsRepo{}, &stubPDFGenerator{})

	_, err := uc.Generate(context.Background(), "01/04/2026", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Generate(context.Background(), "", "treinta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
