package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un ingrediente en stock. Quantity es el stock actual
// y nunca queda negativo tras una operación confirmada: la deducción por
// producción valida disponibilidad antes de restar.
type Ingredient struct {
	ID           string
	Name         string
	Type         string // categoría de unidad libre: KG, GRAMS, LITERS, PIECES...
	Quantity     decimal.Decimal
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
