package repository

import "github.com/jhoicas/myland-api/internal/domain/entity"

// ProductionRepository define el puerto de persistencia para producciones y
// sus líneas de consumo. Create persiste la producción junto con sus líneas;
// el borrado de líneas es explícito (propiedad exclusiva, sin cascada de BD).
type ProductionRepository interface {
	Create(production *entity.Production, lines []*entity.ProductionIngredient) error
	GetByID(id string) (*entity.Production, error)
	List() ([]*entity.Production, error)
	ListLines(productionID string) ([]*entity.ProductionIngredient, error)
	DeleteLines(productionID string) error
	Delete(id string) error
}
