package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/myland-api/internal/domain/entity"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, base_price, selling_price, product_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description,
		product.BasePrice, product.SellingPrice, product.ProductCost,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, base_price, selling_price, product_cost, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.SellingPrice, &p.ProductCost, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos, los más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, base_price, selling_price, product_cost, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.SellingPrice, &p.ProductCost, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por id. Las líneas de receta se eliminan antes,
// explícitamente, desde el caso de uso (misma transacción).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CreateRecipeLine persiste una línea de receta del producto.
func (r *ProductRepo) CreateRecipeLine(line *entity.ProductIngredient) error {
	query := `
		INSERT INTO product_ingredients (id, product_id, ingredient_id, amount_required)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ProductID, line.IngredientID, line.AmountRequired,
	)
	if err != nil {
		return fmt.Errorf("insert recipe line: %w", err)
	}
	return nil
}

// ListRecipe devuelve las líneas de receta de un producto.
func (r *ProductRepo) ListRecipe(productID string) ([]*entity.ProductIngredient, error) {
	query := `
		SELECT id, product_id, ingredient_id, amount_required
		FROM product_ingredients WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list recipe: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductIngredient
	for rows.Next() {
		var line entity.ProductIngredient
		if err := rows.Scan(&line.ID, &line.ProductID, &line.IngredientID, &line.AmountRequired); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		list = append(list, &line)
	}
	return list, rows.Err()
}

// DeleteRecipeByProduct elimina todas las líneas de receta de un producto.
func (r *ProductRepo) DeleteRecipeByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_ingredients WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
