package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// ShopUseCase casos de uso CRUD para tiendas. El borrado elimina las ventas
// de la tienda en la misma transacción (propiedad explícita, sin cascada de BD).
type ShopUseCase struct {
	repo     repository.ShopRepository
	txRunner TxRunner
}

// NewShopUseCase construye el caso de uso.
func NewShopUseCase(repo repository.ShopRepository, txRunner TxRunner) *ShopUseCase {
	return &ShopUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una tienda. El nombre es obligatorio.
func (uc *ShopUseCase) Create(in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	shop := &entity.Shop{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
		City:          in.City,
	}
	if err := uc.repo.Create(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// GetByID obtiene una tienda por id.
func (uc *ShopUseCase) GetByID(id string) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, nil
	}
	return toShopResponse(shop), nil
}

// Update actualiza los campos presentes de una tienda.
func (uc *ShopUseCase) Update(id string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		shop.Name = *in.Name
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if in.ContactNumber != nil {
		shop.ContactNumber = *in.ContactNumber
	}
	if in.Email != nil {
		shop.Email = *in.Email
	}
	if in.City != nil {
		shop.City = *in.City
	}
	if err := uc.repo.Update(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// List devuelve todas las tiendas.
func (uc *ShopUseCase) List() ([]dto.ShopResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShopResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toShopResponse(s))
	}
	return out, nil
}

// Delete elimina una tienda y exactamente sus ventas, en una transacción.
func (uc *ShopUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunSales(ctx, func(
		_ repository.ProductRepository,
		shopRepo repository.ShopRepository,
		saleRepo repository.SaleRepository,
	) error {
		shop, err := shopRepo.GetByID(id)
		if err != nil {
			return err
		}
		if shop == nil {
			return domain.ErrNotFound
		}
		if err := saleRepo.DeleteByShop(id); err != nil {
			return err
		}
		return shopRepo.Delete(id)
	})
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	return &dto.ShopResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
		City:          s.City,
	}
}
