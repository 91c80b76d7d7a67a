package production

import (
	"context"

	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el flujo de
// producción: o se confirman todas las deducciones de stock junto con la
// producción y sus líneas, o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
		productionRepo repository.ProductionRepository,
	) error) error
}
