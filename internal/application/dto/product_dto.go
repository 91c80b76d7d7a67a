package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineRequest línea de receta en la creación de un producto.
type RecipeLineRequest struct {
	IngredientID   string          `json:"ingredientId"`
	AmountRequired decimal.Decimal `json:"amountRequired"`
}

// CreateProductRequest entrada para crear un producto, opcionalmente con receta.
type CreateProductRequest struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	BasePrice    decimal.Decimal     `json:"basePrice"`
	SellingPrice decimal.Decimal     `json:"sellingPrice"`
	ProductCost  decimal.Decimal     `json:"productCost"`
	Recipe       []RecipeLineRequest `json:"recipe,omitempty"`
}

// RecipeLineResponse línea de receta en la salida de un producto.
type RecipeLineResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredientId"`
	AmountRequired decimal.Decimal `json:"amountRequired"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	BasePrice    decimal.Decimal      `json:"basePrice"`
	SellingPrice decimal.Decimal      `json:"sellingPrice"`
	ProductCost  decimal.Decimal      `json:"productCost"`
	Recipe       []RecipeLineResponse `json:"recipe,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}
