package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ShopIncomeResult agrupa ingreso y utilidad acumulados por tienda.
// Las ventas sin tienda se consolidan en el grupo "Venta directa".
type ShopIncomeResult struct {
	ShopID      string
	ShopName    string
	SalesCount  int64
	TotalIncome decimal.Decimal
	TotalProfit decimal.Decimal
}

// SaleReportRow es una fila del reporte de ventas con nombres resueltos
// (producto y tienda) para presentación.
type SaleReportRow struct {
	Date          time.Time
	ProductName   string
	ShopName      string
	SoldUnits     int
	ReturnedUnits int
	TotalIncome   decimal.Decimal
	TotalProfit   decimal.Decimal
}

// AnalyticsRepository define consultas de solo lectura para el dashboard y
// los reportes. No participa en transacciones de escritura.
type AnalyticsRepository interface {
	// GetSalesTotals devuelve ingreso, utilidad y número de ventas del período.
	GetSalesTotals(ctx context.Context, start, end time.Time) (income, profit decimal.Decimal, count int64, err error)
	// GetIncomeByShop agrupa las ventas históricas por tienda.
	GetIncomeByShop(ctx context.Context) ([]ShopIncomeResult, error)
	// GetStockValuation devuelve el número de ingredientes y la valoración
	// del stock (Σ cantidad × precio unitario).
	GetStockValuation(ctx context.Context) (count int64, value decimal.Decimal, err error)
	// GetSalesReport devuelve las ventas del período con nombres resueltos.
	GetSalesReport(ctx context.Context, start, end time.Time) ([]SaleReportRow, error)
}
