package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
	domsales "github.com/jhoicas/myland-api/internal/domain/sales"
)

// RecordSaleUseCase registra ventas derivando ingreso y utilidad de los
// precios almacenados del producto en el momento de la escritura. Cambios
// posteriores de precio no afectan ventas históricas.
type RecordSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewRecordSaleUseCase construye el caso de uso. saleRepo se usa para
// lecturas y borrados simples fuera de transacción.
func NewRecordSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// Record valida la venta, deriva ingreso y utilidad y la persiste dentro de
// una transacción. unidadesNetas = max(0, vendidas - devueltas);
// ingreso = netas × precioVenta; utilidad = netas × (precioVenta − costo).
func (uc *RecordSaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.Product.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SoldUnits < 0 || in.ReturnedUnits < 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Date:          date,
		SoldUnits:     in.SoldUnits,
		ReturnedUnits: in.ReturnedUnits,
		CreatedAt:     time.Now(),
	}

	err = uc.txRunner.RunSales(ctx, func(
		productRepo repository.ProductRepository,
		shopRepo repository.ShopRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetByID(in.Product.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		sale.ProductID = product.ID

		if in.Shop != nil && in.Shop.ID != "" {
			shop, err := shopRepo.GetByID(in.Shop.ID)
			if err != nil {
				return err
			}
			if shop == nil {
				return domain.ErrNotFound
			}
			sale.ShopID = &shop.ID
		}

		net := domsales.NetUnits(in.SoldUnits, in.ReturnedUnits)
		sale.TotalIncome, sale.TotalProfit = domsales.ComputeIncome(net, product.SellingPrice, product.ProductCost)

		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// List devuelve todas las ventas.
func (uc *RecordSaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// Delete elimina una venta por id.
func (uc *RecordSaleUseCase) Delete(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		Date:          s.Date.Format(dto.DateLayout),
		ProductID:     s.ProductID,
		ShopID:        s.ShopID,
		SoldUnits:     s.SoldUnits,
		ReturnedUnits: s.ReturnedUnits,
		TotalIncome:   s.TotalIncome,
		TotalProfit:   s.TotalProfit,
	}
}
