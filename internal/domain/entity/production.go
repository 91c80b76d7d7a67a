package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production representa un evento de producción: unidades producidas de un
// producto consumiendo las cantidades de ingredientes listadas en sus líneas.
// Se crea únicamente a través del flujo de producción y es inmutable salvo
// por su eliminación.
type Production struct {
	ID            string
	Date          time.Time
	ProductID     string
	ProducedUnits int
	CreatedAt     time.Time
}

// ProductionIngredient es una línea de deducción de stock: referencia
// unidireccional producción → ingrediente con la cantidad consumida.
// Pertenece a la producción y se elimina con ella.
type ProductionIngredient struct {
	ID           string
	ProductionID string
	IngredientID string
	QuantityUsed decimal.Decimal
}
