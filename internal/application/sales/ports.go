package sales

import (
	"context"

	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del ámbito de ventas atados a esa tx. Se usa para registrar
// ventas y para el borrado de tiendas con sus ventas (propiedad explícita).
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		shopRepo repository.ShopRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
