package dto

import "github.com/shopspring/decimal"

// UsedIngredientRequest par (ingrediente, cantidad consumida) de una petición de producción.
type UsedIngredientRequest struct {
	IngredientID string          `json:"ingredientId"`
	QuantityUsed decimal.Decimal `json:"quantityUsed"`
}

// RecordProductionRequest body para POST /api/myland/production.
// La lista de ingredientes puede ser vacía (producción sin consumo de stock).
type RecordProductionRequest struct {
	Product         Ref                     `json:"product"`
	Date            string                  `json:"date"`
	ProducedUnits   int                     `json:"producedUnits"`
	UsedIngredients []UsedIngredientRequest `json:"usedIngredients"`
}

// ProductionLineResponse línea de consumo persistida.
type ProductionLineResponse struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredientId"`
	QuantityUsed decimal.Decimal `json:"quantityUsed"`
}

// ProductionResponse salida de una producción con sus líneas.
type ProductionResponse struct {
	ID              string                   `json:"id"`
	Date            string                   `json:"date"`
	ProductID       string                   `json:"productId"`
	ProducedUnits   int                      `json:"producedUnits"`
	UsedIngredients []ProductionLineResponse `json:"usedIngredients"`
}
