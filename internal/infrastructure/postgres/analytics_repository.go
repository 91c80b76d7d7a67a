package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/myland-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesTotals devuelve ingreso, utilidad y número de ventas del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *AnalyticsRepo) GetSalesTotals(
	ctx context.Context,
	start, end time.Time,
) (income, profit decimal.Decimal, count int64, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(income), 0) AS income,
	    COALESCE(SUM(profit), 0) AS profit,
	    COUNT(*)                 AS sales_count
	FROM sales
	WHERE date BETWEEN $1 AND $2`

	err = r.pool.QueryRow(ctx, query, start, end).Scan(&income, &profit, &count)
	if err != nil {
		return decimal.Zero, decimal.Zero, 0, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return income, profit, count, nil
}

// GetIncomeByShop agrupa ingreso y utilidad históricos por tienda.
// Las ventas sin tienda se consolidan en el grupo "Venta directa".
func (r *AnalyticsRepo) GetIncomeByShop(ctx context.Context) ([]repository.ShopIncomeResult, error) {
	const query = `
	SELECT
	    COALESCE(sh.id, 'direct')         AS shop_id,
	    COALESCE(sh.name, 'Venta directa') AS shop_name,
	    COUNT(s.id)                        AS sales_count,
	    COALESCE(SUM(s.income), 0)         AS total_income,
	    COALESCE(SUM(s.profit), 0)         AS total_profit
	FROM sales s
	LEFT JOIN shops sh ON sh.id = s.shop_id
	GROUP BY sh.id, sh.name
	ORDER BY total_income DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetIncomeByShop: %w", err)
	}
	defer rows.Close()

	var results []repository.ShopIncomeResult
	for rows.Next() {
		var row repository.ShopIncomeResult
		if err := rows.Scan(
			&row.ShopID,
			&row.ShopName,
			&row.SalesCount,
			&row.TotalIncome,
			&row.TotalProfit,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetIncomeByShop scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetStockValuation devuelve el número de ingredientes y la valoración del
// stock actual (Σ cantidad × precio unitario).
func (r *AnalyticsRepo) GetStockValuation(ctx context.Context) (count int64, value decimal.Decimal, err error) {
	const query = `
	SELECT
	    COUNT(*)                                      AS ingredient_count,
	    COALESCE(SUM(quantity * price_per_unit), 0)   AS stock_value
	FROM ingredients`

	err = r.pool.QueryRow(ctx, query).Scan(&count, &value)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("analytics.GetStockValuation: %w", err)
	}
	return count, value, nil
}

// GetSalesReport devuelve las ventas del período con nombres resueltos de
// producto y tienda, ordenadas por fecha.
func (r *AnalyticsRepo) GetSalesReport(ctx context.Context, start, end time.Time) ([]repository.SaleReportRow, error) {
	const query = `
	SELECT
	    s.date,
	    p.name                              AS product_name,
	    COALESCE(sh.name, 'Venta directa')  AS shop_name,
	    s.sold_units,
	    s.returned_units,
	    s.income,
	    s.profit
	FROM sales s
	JOIN products p   ON p.id  = s.product_id
	LEFT JOIN shops sh ON sh.id = s.shop_id
	WHERE s.date BETWEEN $1 AND $2
	ORDER BY s.date, s.created_at`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesReport: %w", err)
	}
	defer rows.Close()

	var results []repository.SaleReportRow
	for rows.Next() {
		var row repository.SaleReportRow
		if err := rows.Scan(
			&row.Date,
			&row.ProductName,
			&row.ShopName,
			&row.SoldUnits,
			&row.ReturnedUnits,
			&row.TotalIncome,
			&row.TotalProfit,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesReport scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
