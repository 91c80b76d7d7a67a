package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest body para POST /api/myland/sale. La tienda es opcional.
type RecordSaleRequest struct {
	Product       Ref    `json:"product"`
	Shop          *Ref   `json:"shop,omitempty"`
	Date          string `json:"date"`
	SoldUnits     int    `json:"soldUnits"`
	ReturnedUnits int    `json:"returnedUnits"`
}

// SaleResponse salida de una venta con ingreso y utilidad ya derivados.
type SaleResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	ProductID     string          `json:"productId"`
	ShopID        *string         `json:"shopId,omitempty"`
	SoldUnits     int             `json:"soldUnits"`
	ReturnedUnits int             `json:"returnedUnits"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
}
