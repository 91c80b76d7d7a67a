package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que un ingrediente no tiene stock suficiente
// para la cantidad solicitada. Lleva nombre, requerido y disponible para que
// la respuesta HTTP pueda describir exactamente qué faltó.
type InsufficientStockError struct {
	IngredientName string
	Required       decimal.Decimal
	Available      decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: requerido %s, disponible %s",
		e.IngredientName, e.Required.StringFixed(2), e.Available.StringFixed(2))
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// IngredientNotFoundError indica que un ingrediente referenciado no existe.
type IngredientNotFoundError struct {
	ID string
}

func (e *IngredientNotFoundError) Error() string {
	return fmt.Sprintf("ingrediente no encontrado: %s", e.ID)
}

// Is permite errors.Is(err, ErrNotFound).
func (e *IngredientNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
