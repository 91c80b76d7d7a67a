package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository sobre PostgreSQL
// (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, ingredient_type, quantity, price_per_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Type, ing.Quantity, ing.PricePerUnit, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por id. Devuelve nil si no existe.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el ingrediente y bloquea la fila (SELECT FOR UPDATE)
// para serializar deducciones concurrentes sobre el mismo ingrediente.
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return r.get(id, true)
}

func (r *IngredientRepo) get(id string, forUpdate bool) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, ingredient_type, quantity, price_per_unit, created_at, updated_at
		FROM ingredients WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var ing entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ing.ID, &ing.Name, &ing.Type, &ing.Quantity, &ing.PricePerUnit, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &ing, nil
}

// UpdateQuantity fija el stock del ingrediente (usado por el flujo de producción).
func (r *IngredientRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ingredients SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update ingredient quantity: %w", err)
	}
	return nil
}

// List devuelve todos los ingredientes ordenados por nombre.
func (r *IngredientRepo) List() ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, ingredient_type, quantity, price_per_unit, created_at, updated_at
		FROM ingredients ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Type, &ing.Quantity, &ing.PricePerUnit, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &ing)
	}
	return list, rows.Err()
}

// Delete elimina un ingrediente por id.
func (r *IngredientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}
