package usecase

import (
	"context"

	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// TxRunner puerto transaccional para los CRUD que tocan varias tablas:
// producto + líneas de receta (Run) y tienda + sus ventas (RunSales).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
		productionRepo repository.ProductionRepository,
	) error) error
	RunSales(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		shopRepo repository.ShopRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
