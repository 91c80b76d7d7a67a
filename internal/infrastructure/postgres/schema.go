package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Las referencias de propiedad
// (producción → líneas, tienda → ventas) no llevan ON DELETE CASCADE: el
// borrado de hijas es explícito en los casos de uso, dentro de la misma
// transacción que el padre.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS ingredients (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		ingredient_type TEXT NOT NULL,
		quantity        NUMERIC NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		price_per_unit  NUMERIC NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		base_price    NUMERIC NOT NULL DEFAULT 0,
		selling_price NUMERIC NOT NULL DEFAULT 0,
		product_cost  NUMERIC NOT NULL DEFAULT 0,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS product_ingredients (
		id              TEXT PRIMARY KEY,
		product_id      TEXT NOT NULL REFERENCES products(id),
		ingredient_id   TEXT NOT NULL REFERENCES ingredients(id),
		amount_required NUMERIC NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS productions (
		id             TEXT PRIMARY KEY,
		date           DATE NOT NULL,
		product_id     TEXT NOT NULL REFERENCES products(id),
		produced_units INTEGER NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS production_ingredients (
		id            TEXT PRIMARY KEY,
		production_id TEXT NOT NULL REFERENCES productions(id),
		ingredient_id TEXT NOT NULL REFERENCES ingredients(id),
		quantity_used NUMERIC NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_production_ingredients_production
		ON production_ingredients(production_id);

	CREATE TABLE IF NOT EXISTS shops (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		address        TEXT NOT NULL DEFAULT '',
		contact_number TEXT NOT NULL DEFAULT '',
		email          TEXT NOT NULL DEFAULT '',
		city           TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS sales (
		id             TEXT PRIMARY KEY,
		date           DATE NOT NULL,
		product_id     TEXT NOT NULL REFERENCES products(id),
		shop_id        TEXT REFERENCES shops(id),
		sold_units     INTEGER NOT NULL DEFAULT 0,
		returned_units INTEGER NOT NULL DEFAULT 0,
		income         NUMERIC NOT NULL DEFAULT 0,
		profit         NUMERIC NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sales_shop ON sales(shop_id);
	CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date);`

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
