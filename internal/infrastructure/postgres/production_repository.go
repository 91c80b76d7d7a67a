package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación de ProductionRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste la producción y sus líneas. Debe invocarse dentro de la
// transacción del flujo de producción: la fila y las líneas se confirman o
// revierten juntas.
func (r *ProductionRepo) Create(production *entity.Production, lines []*entity.ProductionIngredient) error {
	query := `
		INSERT INTO productions (id, date, product_id, produced_units, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		production.ID, production.Date, production.ProductID, production.ProducedUnits, production.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	for _, line := range lines {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO production_ingredients (id, production_id, ingredient_id, quantity_used)
			 VALUES ($1, $2, $3, $4)`,
			line.ID, line.ProductionID, line.IngredientID, line.QuantityUsed,
		)
		if err != nil {
			return fmt.Errorf("insert production line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una producción por id. Devuelve nil si no existe.
func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	query := `
		SELECT id, date, product_id, produced_units, created_at
		FROM productions WHERE id = $1`
	var p entity.Production
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Date, &p.ProductID, &p.ProducedUnits, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &p, nil
}

// List devuelve todas las producciones, las más recientes primero.
func (r *ProductionRepo) List() ([]*entity.Production, error) {
	query := `
		SELECT id, date, product_id, produced_units, created_at
		FROM productions ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.Date, &p.ProductID, &p.ProducedUnits, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListLines devuelve las líneas de consumo de una producción.
func (r *ProductionRepo) ListLines(productionID string) ([]*entity.ProductionIngredient, error) {
	query := `
		SELECT id, production_id, ingredient_id, quantity_used
		FROM production_ingredients WHERE production_id = $1`
	rows, err := r.q.Query(context.Background(), query, productionID)
	if err != nil {
		return nil, fmt.Errorf("list production lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionIngredient
	for rows.Next() {
		var line entity.ProductionIngredient
		if err := rows.Scan(&line.ID, &line.ProductionID, &line.IngredientID, &line.QuantityUsed); err != nil {
			return nil, fmt.Errorf("scan production line: %w", err)
		}
		list = append(list, &line)
	}
	return list, rows.Err()
}

// DeleteLines elimina exactamente las líneas de la producción indicada.
func (r *ProductionRepo) DeleteLines(productionID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_ingredients WHERE production_id = $1`, productionID)
	if err != nil {
		return fmt.Errorf("delete production lines: %w", err)
	}
	return nil
}

// Delete elimina la fila de la producción (las líneas se borran antes con DeleteLines).
func (r *ProductionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}
