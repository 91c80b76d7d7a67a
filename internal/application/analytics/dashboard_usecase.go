// Package analytics contiene los casos de uso de solo lectura: el resumen
// del negocio para el dashboard y el reporte de ventas en PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del negocio: ventas del mes en curso,
// acumulado histórico, valoración del stock y desglose por tienda.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No toca las
// tablas de escritura directamente.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. GetSalesTotals(mes)    → MonthIncome/MonthProfit/MonthSalesCount
//  2. GetSalesTotals(todo)   → TotalIncome/TotalProfit
//  3. GetStockValuation      → IngredientCount/StockValue
//  4. GetIncomeByShop        → IncomeByShop
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	// Histórico completo: rango abierto desde el epoch
	allStart := time.Unix(0, 0)

	type totalsResult struct {
		income decimal.Decimal
		profit decimal.Decimal
		count  int64
		err    error
	}
	type stockResult struct {
		count int64
		value decimal.Decimal
		err   error
	}
	type shopsResult struct {
		shops []repository.ShopIncomeResult
		err   error
	}

	monthCh := make(chan totalsResult, 1)
	allCh := make(chan totalsResult, 1)
	stockCh := make(chan stockResult, 1)
	shopsCh := make(chan shopsResult, 1)

	go func() {
		income, profit, count, err := uc.analyticsRepo.GetSalesTotals(ctx, monthStart, monthEnd)
		monthCh <- totalsResult{income, profit, count, err}
	}()
	go func() {
		income, profit, count, err := uc.analyticsRepo.GetSalesTotals(ctx, allStart, monthEnd)
		allCh <- totalsResult{income, profit, count, err}
	}()
	go func() {
		count, value, err := uc.analyticsRepo.GetStockValuation(ctx)
		stockCh <- stockResult{count, value, err}
	}()
	go func() {
		shops, err := uc.analyticsRepo.GetIncomeByShop(ctx)
		shopsCh <- shopsResult{shops, err}
	}()

	month := <-monthCh
	all := <-allCh
	stock := <-stockCh
	shops := <-shopsCh

	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if all.err != nil {
		return nil, fmt.Errorf("dashboard: ventas históricas: %w", all.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: valoración de stock: %w", stock.err)
	}
	if shops.err != nil {
		return nil, fmt.Errorf("dashboard: ingreso por tienda: %w", shops.err)
	}

	byShop := make([]dto.ShopIncomeDTO, 0, len(shops.shops))
	for _, s := range shops.shops {
		byShop = append(byShop, dto.ShopIncomeDTO{
			ShopID:      s.ShopID,
			ShopName:    s.ShopName,
			SalesCount:  s.SalesCount,
			TotalIncome: s.TotalIncome.Round(2),
			TotalProfit: s.TotalProfit.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		MonthIncome:     month.income.Round(2),
		MonthProfit:     month.profit.Round(2),
		MonthSalesCount: month.count,
		TotalIncome:     all.income.Round(2),
		TotalProfit:     all.profit.Round(2),
		IngredientCount: stock.count,
		StockValue:      stock.value.Round(2),
		IncomeByShop:    byShop,
		DateLabel:       monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
