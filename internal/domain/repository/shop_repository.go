package repository

import "github.com/jhoicas/myland-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para tiendas.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id string) (*entity.Shop, error)
	Update(shop *entity.Shop) error
	List() ([]*entity.Shop, error)
	Delete(id string) error
}
