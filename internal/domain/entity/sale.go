package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada contra un producto y opcionalmente una
// tienda. TotalIncome y TotalProfit se derivan de los precios del producto en
// el momento de la escritura y quedan congelados.
type Sale struct {
	ID            string
	Date          time.Time
	ProductID     string
	ShopID        *string // nullable: venta directa sin tienda
	SoldUnits     int
	ReturnedUnits int
	TotalIncome   decimal.Decimal
	TotalProfit   decimal.Decimal
	CreatedAt     time.Time
}
