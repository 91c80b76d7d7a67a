package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La receta (líneas
// producto → ingrediente) pertenece al producto: se crea y elimina con él en
// la misma transacción.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto, opcionalmente con su receta. Cada ingrediente
// referenciado por la receta debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BasePrice.IsNegative() || in.SellingPrice.IsNegative() || in.ProductCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Recipe {
		if line.IngredientID == "" || line.AmountRequired.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		BasePrice:    in.BasePrice,
		SellingPrice: in.SellingPrice,
		ProductCost:  in.ProductCost,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	recipe := make([]*entity.ProductIngredient, 0, len(in.Recipe))

	err := uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
		_ repository.ProductionRepository,
	) error {
		for _, line := range in.Recipe {
			ing, err := ingredientRepo.GetByID(line.IngredientID)
			if err != nil {
				return err
			}
			if ing == nil {
				return &domain.IngredientNotFoundError{ID: line.IngredientID}
			}
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, line := range in.Recipe {
			rl := &entity.ProductIngredient{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				IngredientID:   line.IngredientID,
				AmountRequired: line.AmountRequired,
			}
			if err := productRepo.CreateRecipeLine(rl); err != nil {
				return err
			}
			recipe = append(recipe, rl)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toProductResponse(product, recipe), nil
}

// List devuelve todos los productos con su receta.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		recipe, err := uc.repo.ListRecipe(p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toProductResponse(p, recipe))
	}
	return out, nil
}

// Delete elimina un producto y sus líneas de receta en la misma transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.IngredientRepository,
		productRepo repository.ProductRepository,
		_ repository.ProductionRepository,
	) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.DeleteRecipeByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product, recipe []*entity.ProductIngredient) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		BasePrice:    p.BasePrice,
		SellingPrice: p.SellingPrice,
		ProductCost:  p.ProductCost,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	for _, line := range recipe {
		resp.Recipe = append(resp.Recipe, dto.RecipeLineResponse{
			ID:             line.ID,
			IngredientID:   line.IngredientID,
			AmountRequired: line.AmountRequired,
		})
	}
	return resp
}
