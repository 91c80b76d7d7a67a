package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// IngredientUseCase casos de uso CRUD para ingredientes. La deducción de
// stock por producción vive en el flujo de producción; aquí solo se editan
// existencias de forma directa.
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create crea un ingrediente. Nombre y tipo de unidad son obligatorios; la
// cantidad inicial no puede ser negativa.
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() || in.PricePerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ing := &entity.Ingredient{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Type:         in.Type,
		Quantity:     in.Quantity,
		PricePerUnit: in.PricePerUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// List devuelve todos los ingredientes.
func (uc *IngredientUseCase) List() ([]dto.IngredientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, *toIngredientResponse(ing))
	}
	return out, nil
}

// Delete elimina un ingrediente por id.
func (uc *IngredientUseCase) Delete(id string) error {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toIngredientResponse(ing *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:           ing.ID,
		Name:         ing.Name,
		Type:         ing.Type,
		Quantity:     ing.Quantity,
		PricePerUnit: ing.PricePerUnit,
		CreatedAt:    ing.CreatedAt,
		UpdatedAt:    ing.UpdatedAt,
	}
}
