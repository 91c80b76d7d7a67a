package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una receta/producto vendible. SellingPrice y ProductCost
// se usan para derivar ingreso y utilidad al registrar una venta; los cambios
// posteriores de precio no afectan ventas históricas.
type Product struct {
	ID           string
	Name         string
	Description  string
	BasePrice    decimal.Decimal
	SellingPrice decimal.Decimal
	ProductCost  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductIngredient es una línea de receta: cuánto de un ingrediente requiere
// el producto, independiente de cualquier producción concreta. Pertenece al
// producto y se elimina con él.
type ProductIngredient struct {
	ID             string
	ProductID      string
	IngredientID   string
	AmountRequired decimal.Decimal
}
