package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/myland-api/internal/application/dto"
	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// ProductionUseCase registra producciones de forma transaccional: valida la
// disponibilidad de todos los ingredientes con bloqueo de fila (SELECT FOR
// UPDATE) antes de deducir nada, y persiste la producción con sus líneas en
// la misma transacción (Commit/Rollback).
type ProductionUseCase struct {
	txRunner       TxRunner
	productionRepo repository.ProductionRepository

	// RestockOnDelete: política configurable. Si es true, eliminar una
	// producción devuelve a stock la cantidad consumida de cada línea.
	restockOnDelete bool
}

// NewProductionUseCase construye el caso de uso. productionRepo se usa para
// lecturas fuera de transacción (listados).
func NewProductionUseCase(txRunner TxRunner, productionRepo repository.ProductionRepository, restockOnDelete bool) *ProductionUseCase {
	return &ProductionUseCase{
		txRunner:        txRunner,
		productionRepo:  productionRepo,
		restockOnDelete: restockOnDelete,
	}
}

// Record inicia una transacción, bloquea las filas de todos los ingredientes
// usados, valida stock suficiente para cada par (pre-validación, sin mutar),
// deduce las cantidades y persiste la producción con sus líneas.
//
// Una lista de ingredientes vacía es legal (producción sin consumo de stock).
// Ingredientes repetidos en la misma petición se validan contra el saldo ya
// descontado por las líneas anteriores.
func (uc *ProductionUseCase) Record(ctx context.Context, in dto.RecordProductionRequest) (*dto.ProductionResponse, error) {
	if in.Product.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ProducedUnits < 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, pair := range in.UsedIngredients {
		if pair.IngredientID == "" || pair.QuantityUsed.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	prod := &entity.Production{
		ID:            uuid.New().String(),
		Date:          date,
		ProducedUnits: in.ProducedUnits,
		CreatedAt:     time.Now(),
	}
	var lines []*entity.ProductionIngredient

	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
		productionRepo repository.ProductionRepository,
	) error {
		product, err := productRepo.GetByID(in.Product.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		prod.ProductID = product.ID

		// Pre-validación: bloquea cada fila y verifica disponibilidad de
		// TODOS los pares antes de deducir nada. balance lleva el saldo
		// restante por ingrediente para pares repetidos.
		locked := make(map[string]*entity.Ingredient)
		balance := make(map[string]decimal.Decimal)
		for _, pair := range in.UsedIngredients {
			ing, ok := locked[pair.IngredientID]
			if !ok {
				ing, err = ingredientRepo.GetForUpdate(pair.IngredientID)
				if err != nil {
					return err
				}
				if ing == nil {
					return &domain.IngredientNotFoundError{ID: pair.IngredientID}
				}
				locked[pair.IngredientID] = ing
				balance[pair.IngredientID] = ing.Quantity
			}
			available := balance[pair.IngredientID]
			if !available.GreaterThanOrEqual(pair.QuantityUsed) {
				return &domain.InsufficientStockError{
					IngredientName: ing.Name,
					Required:       pair.QuantityUsed,
					Available:      available,
				}
			}
			balance[pair.IngredientID] = available.Sub(pair.QuantityUsed)
		}

		// Deducción: persiste el nuevo saldo de cada ingrediente bloqueado.
		// El piso en cero es defensivo; la pre-validación lo vuelve inocuo.
		for id, remaining := range balance {
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}
			if err := ingredientRepo.UpdateQuantity(id, remaining); err != nil {
				return err
			}
		}

		// Líneas de consumo en el orden de la petición.
		lines = make([]*entity.ProductionIngredient, 0, len(in.UsedIngredients))
		for _, pair := range in.UsedIngredients {
			lines = append(lines, &entity.ProductionIngredient{
				ID:           uuid.New().String(),
				ProductionID: prod.ID,
				IngredientID: pair.IngredientID,
				QuantityUsed: pair.QuantityUsed,
			})
		}
		return productionRepo.Create(prod, lines)
	})
	if err != nil {
		return nil, err
	}

	return toProductionResponse(prod, lines), nil
}

// Delete elimina una producción y sus líneas en la misma transacción
// (propiedad exclusiva, sin cascada de BD). Si la política RestockOnDelete
// está activa, devuelve a stock la cantidad de cada línea antes de borrar.
func (uc *ProductionUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		_ repository.ProductRepository,
		productionRepo repository.ProductionRepository,
	) error {
		prod, err := productionRepo.GetByID(id)
		if err != nil {
			return err
		}
		if prod == nil {
			return domain.ErrNotFound
		}
		lines, err := productionRepo.ListLines(id)
		if err != nil {
			return err
		}
		if uc.restockOnDelete {
			for _, line := range lines {
				ing, err := ingredientRepo.GetForUpdate(line.IngredientID)
				if err != nil {
					return err
				}
				if ing == nil {
					// El ingrediente fue eliminado después de la producción;
					// no hay fila a la que devolver stock.
					continue
				}
				if err := ingredientRepo.UpdateQuantity(ing.ID, ing.Quantity.Add(line.QuantityUsed)); err != nil {
					return err
				}
			}
		}
		if err := productionRepo.DeleteLines(id); err != nil {
			return err
		}
		return productionRepo.Delete(id)
	})
}

// List devuelve todas las producciones con sus líneas.
func (uc *ProductionUseCase) List(ctx context.Context) ([]dto.ProductionResponse, error) {
	prods, err := uc.productionRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionResponse, 0, len(prods))
	for _, p := range prods {
		lines, err := uc.productionRepo.ListLines(p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toProductionResponse(p, lines))
	}
	return out, nil
}

func toProductionResponse(p *entity.Production, lines []*entity.ProductionIngredient) *dto.ProductionResponse {
	resp := &dto.ProductionResponse{
		ID:              p.ID,
		Date:            p.Date.Format(dto.DateLayout),
		ProductID:       p.ProductID,
		ProducedUnits:   p.ProducedUnits,
		UsedIngredients: make([]dto.ProductionLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		resp.UsedIngredients = append(resp.UsedIngredients, dto.ProductionLineResponse{
			ID:           line.ID,
			IngredientID: line.IngredientID,
			QuantityUsed: line.QuantityUsed,
		})
	}
	return resp
}
