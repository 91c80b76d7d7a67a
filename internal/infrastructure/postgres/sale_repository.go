package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta con ingreso y utilidad ya derivados.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, date, product_id, shop_id, sold_units, returned_units, income, profit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.ProductID, sale.ShopID,
		sale.SoldUnits, sale.ReturnedUnits, sale.TotalIncome, sale.TotalProfit, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por id. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, date, product_id, shop_id, sold_units, returned_units, income, profit, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Date, &s.ProductID, &s.ShopID,
		&s.SoldUnits, &s.ReturnedUnits, &s.TotalIncome, &s.TotalProfit, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List devuelve todas las ventas, las más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `
		SELECT id, date, product_id, shop_id, sold_units, returned_units, income, profit, created_at
		FROM sales ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.ProductID, &s.ShopID,
			&s.SoldUnits, &s.ReturnedUnits, &s.TotalIncome, &s.TotalProfit, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una venta por id.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// DeleteByShop elimina exactamente las ventas de la tienda indicada.
func (r *SaleRepo) DeleteByShop(shopID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE shop_id = $1`, shopID)
	if err != nil {
		return fmt.Errorf("delete sales by shop: %w", err)
	}
	return nil
}
