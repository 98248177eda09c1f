package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements define o schema completo do sistema. Cada statement é
// idempotente (CREATE ... IF NOT EXISTS), o que permite executar o bootstrap
// em todo startup sem controle de versão.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		description TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		cost_price DOUBLE PRECISION,
		barcode VARCHAR(100) UNIQUE,
		category VARCHAR(100),
		brand VARCHAR(100),
		weight DOUBLE PRECISION,
		dimensions VARCHAR(50),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_name ON products (name)`,

	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE,
		phone VARCHAR(20),
		document VARCHAR(20) UNIQUE,
		birth_date TIMESTAMPTZ,
		gender VARCHAR(10),
		address_street VARCHAR(255),
		address_number VARCHAR(10),
		address_complement VARCHAR(100),
		address_neighborhood VARCHAR(100),
		address_city VARCHAR(100),
		address_state VARCHAR(2),
		address_zipcode VARCHAR(10),
		notes TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS inventory (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL UNIQUE REFERENCES products (id),
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		min_stock INTEGER NOT NULL DEFAULT 0,
		max_stock INTEGER,
		location VARCHAR(100),
		last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS inventory_movements (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES products (id),
		movement_type VARCHAR(20) NOT NULL,
		quantity INTEGER NOT NULL,
		previous_quantity INTEGER NOT NULL,
		new_quantity INTEGER NOT NULL,
		reason VARCHAR(255),
		reference_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_movements_product ON inventory_movements (product_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id UUID PRIMARY KEY,
		customer_id UUID REFERENCES customers (id),
		total_amount DOUBLE PRECISION NOT NULL,
		discount_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		tax_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		final_amount DOUBLE PRECISION NOT NULL,
		payment_method VARCHAR(50) NOT NULL,
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		nfce_number VARCHAR(50),
		nfce_key VARCHAR(50),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS sale_items (
		id UUID PRIMARY KEY,
		sale_id UUID NOT NULL REFERENCES sales (id) ON DELETE CASCADE,
		product_id UUID NOT NULL REFERENCES products (id),
		quantity INTEGER NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		discount_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
		discount_amount DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items (sale_id)`,

	`CREATE TABLE IF NOT EXISTS payment_methods (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		type VARCHAR(50) NOT NULL,
		requires_approval BOOLEAN NOT NULL DEFAULT FALSE,
		fee_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		sale_id UUID NOT NULL REFERENCES sales (id),
		payment_method_id UUID NOT NULL REFERENCES payment_methods (id),
		amount DOUBLE PRECISION NOT NULL,
		fee_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		net_amount DOUBLE PRECISION NOT NULL,
		authorization_code VARCHAR(100),
		transaction_id VARCHAR(100),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		processed_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_sale ON payments (sale_id)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'staff',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		last_login_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema cria as tabelas do sistema caso não existam
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}
	return nil
}
