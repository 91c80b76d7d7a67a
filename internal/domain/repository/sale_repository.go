package repository

import "github.com/jhoicas/myland-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas.
// DeleteByShop soporta la propiedad tienda → ventas: al eliminar una tienda
// se eliminan exactamente sus ventas, en la misma transacción.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	Delete(id string) error
	DeleteByShop(shopID string) error
}
