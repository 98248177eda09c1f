package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/inventory"
)

// Erros específicos do repositório
var (
	ErrInventoryNotFound = errors.New("registro de estoque não encontrado")
)

// InventoryRepository implementa a interface inventory.Repository
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository cria uma nova instância de InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) inventory.Repository {
	return &InventoryRepository{
		db: db,
	}
}

// FindByID implementa inventory.Repository.FindByID
func (r *InventoryRepository) FindByID(ctx context.Context, id string) (*inventory.Inventory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, product_id, quantity, min_stock, max_stock, location, last_updated
		FROM inventory WHERE id = $1`, id)

	inv, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar estoque: %w", err)
	}
	return inv, nil
}

// FindByProduct implementa inventory.Repository.FindByProduct
func (r *InventoryRepository) FindByProduct(ctx context.Context, productID string) (*inventory.Inventory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, product_id, quantity, min_stock, max_stock, location, last_updated
		FROM inventory WHERE product_id = $1`, productID)

	inv, err := scanInventory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar estoque do produto: %w", err)
	}
	return inv, nil
}

// Save implementa inventory.Repository.Save
func (r *InventoryRepository) Save(ctx context.Context, inv *inventory.Inventory, mov *inventory.Movement) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO inventory (id, product_id, quantity, min_stock, max_stock, location, last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (product_id) DO UPDATE SET
				quantity = EXCLUDED.quantity,
				min_stock = EXCLUDED.min_stock,
				max_stock = EXCLUDED.max_stock,
				location = EXCLUDED.location,
				last_updated = EXCLUDED.last_updated`,
			inv.ID, inv.ProductID, inv.Quantity, inv.MinStock, inv.MaxStock,
			inv.Location, inv.LastUpdated)
		if err != nil {
			return fmt.Errorf("erro ao salvar estoque: %w", err)
		}

		if mov != nil {
			if err := insertMovement(ctx, tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
}

// List implementa inventory.Repository.List
func (r *InventoryRepository) List(ctx context.Context, f inventory.Filter) ([]*inventory.WithProduct, error) {
	query := `SELECT i.id, i.product_id, i.quantity, i.min_stock, i.max_stock,
			i.location, i.last_updated, p.name, p.price
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if f.LowStock {
		query += " AND i.quantity <= i.min_stock"
	}
	if f.ProductName != "" {
		query += fmt.Sprintf(" AND p.name ILIKE $%d", argIdx)
		args = append(args, "%"+f.ProductName+"%")
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY p.name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.Limit, f.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoque: %w", err)
	}
	defer rows.Close()

	var items []*inventory.WithProduct
	for rows.Next() {
		var wp inventory.WithProduct
		err := rows.Scan(&wp.ID, &wp.ProductID, &wp.Quantity, &wp.MinStock,
			&wp.MaxStock, &wp.Location, &wp.LastUpdated,
			&wp.ProductName, &wp.ProductPrice)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler estoque: %w", err)
		}
		items = append(items, &wp)
	}
	return items, rows.Err()
}

// ListMovements implementa inventory.Repository.ListMovements
func (r *InventoryRepository) ListMovements(ctx context.Context, productID string, skip, limit int) ([]*inventory.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, movement_type, quantity, previous_quantity,
			new_quantity, reason, reference_id, created_at
		FROM inventory_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		productID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos: %w", err)
	}
	defer rows.Close()

	var movements []*inventory.Movement
	for rows.Next() {
		var m inventory.Movement
		var referenceID *string
		err := rows.Scan(&m.ID, &m.ProductID, &m.MovementType, &m.Quantity,
			&m.PreviousQuantity, &m.NewQuantity, &m.Reason, &referenceID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler movimento: %w", err)
		}
		m.ReferenceID = deref(referenceID)
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// ListLowStock implementa inventory.Repository.ListLowStock
func (r *InventoryRepository) ListLowStock(ctx context.Context) ([]*inventory.LowStockItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.product_id, p.name, i.quantity, i.min_stock, i.max_stock, i.location
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.quantity <= i.min_stock AND p.active = true
		ORDER BY i.quantity`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoque baixo: %w", err)
	}
	defer rows.Close()

	var items []*inventory.LowStockItem
	for rows.Next() {
		var it inventory.LowStockItem
		err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity,
			&it.MinStock, &it.MaxStock, &it.Location)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler estoque baixo: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Summarize implementa inventory.Repository.Summarize
func (r *InventoryRepository) Summarize(ctx context.Context) (*inventory.Summary, error) {
	var s inventory.Summary

	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM products WHERE active = true),
			(SELECT COUNT(*) FROM inventory),
			(SELECT COUNT(*) FROM inventory WHERE quantity <= min_stock),
			COALESCE((SELECT SUM(i.quantity * p.price)
				FROM inventory i JOIN products p ON p.id = i.product_id
				WHERE p.active = true), 0)`).
		Scan(&s.TotalProducts, &s.TotalInventory, &s.LowStockCount, &s.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir estoque: %w", err)
	}
	return &s, nil
}

func scanInventory(row pgx.Row) (*inventory.Inventory, error) {
	var inv inventory.Inventory
	err := row.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.MinStock,
		&inv.MaxStock, &inv.Location, &inv.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func insertMovement(ctx context.Context, tx pgx.Tx, m *inventory.Movement) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO inventory_movements (
			id, product_id, movement_type, quantity, previous_quantity,
			new_quantity, reason, reference_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.ProductID, m.MovementType, m.Quantity, m.PreviousQuantity,
		m.NewQuantity, m.Reason, nullIfEmpty(m.ReferenceID), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar movimento: %w", err)
	}
	return nil
}
