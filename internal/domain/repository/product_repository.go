package repository

import "github.com/jhoicas/myland-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos y sus
// líneas de receta. Las líneas pertenecen al producto: el caso de uso las
// elimina explícitamente dentro de la misma transacción que el producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Delete(id string) error

	CreateRecipeLine(line *entity.ProductIngredient) error
	ListRecipe(productID string) ([]*entity.ProductIngredient, error)
	DeleteRecipeByProduct(productID string) error
}
