package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/myland-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para ingredientes.
// GetForUpdate se usa dentro de transacciones para serializar deducciones
// concurrentes sobre el mismo ingrediente.
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	// GetForUpdate bloquea la fila del ingrediente (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Ingredient, error)
	UpdateQuantity(id string, quantity decimal.Decimal) error
	List() ([]*entity.Ingredient, error)
	Delete(id string) error
}
