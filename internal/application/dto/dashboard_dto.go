package dto

import "github.com/shopspring/decimal"

// ShopIncomeDTO ingreso y utilidad acumulados de una tienda.
type ShopIncomeDTO struct {
	ShopID      string          `json:"shopId"`
	ShopName    string          `json:"shopName"`
	SalesCount  int64           `json:"salesCount"`
	TotalIncome decimal.Decimal `json:"totalIncome"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// DashboardSummaryDTO resumen del negocio: ventas del mes, históricas,
// valoración de stock y desglose por tienda.
type DashboardSummaryDTO struct {
	MonthIncome     decimal.Decimal `json:"monthIncome"`
	MonthProfit     decimal.Decimal `json:"monthProfit"`
	MonthSalesCount int64           `json:"monthSalesCount"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalProfit     decimal.Decimal `json:"totalProfit"`
	IngredientCount int64           `json:"ingredientCount"`
	StockValue      decimal.Decimal `json:"stockValue"`
	IncomeByShop    []ShopIncomeDTO `json:"incomeByShop"`
	DateLabel       string          `json:"dateLabel"`
}
