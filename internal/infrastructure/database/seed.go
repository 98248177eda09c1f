package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/customer"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/inventory"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/payment"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/product"
	"github.com/hugohenrick/pdv-backoffice/pkg/logger"
)

type seedProduct struct {
	name      string
	price     float64
	costPrice float64
	barcode   string
	category  string
	brand     string
	quantity  int
	minStock  int
	maxStock  int
	location  string
}

type seedMethod struct {
	name             string
	methodType       string
	requiresApproval bool
	feePercentage    float64
}

// SeedSampleData carrega dados de exemplo quando o catálogo está vazio.
// A carga é best-effort: qualquer erro é logado e aborta o seed sem
// derrubar o serviço.
func SeedSampleData(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		log.Error("seed: erro ao verificar catálogo", "error", err)
		return
	}
	if count > 0 {
		log.Info("seed: catálogo já populado, nada a fazer")
		return
	}

	if err := seedCategories(ctx, pool); err != nil {
		log.Error("seed: erro ao criar categorias", "error", err)
		return
	}
	if err := seedProducts(ctx, pool); err != nil {
		log.Error("seed: erro ao criar produtos", "error", err)
		return
	}
	if err := seedPaymentMethods(ctx, pool); err != nil {
		log.Error("seed: erro ao criar métodos de pagamento", "error", err)
		return
	}
	if err := seedCustomers(ctx, pool); err != nil {
		log.Error("seed: erro ao criar clientes", "error", err)
		return
	}

	log.Info("seed: dados de exemplo criados")
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []struct{ name, description string }{
		{"Eletrônicos", "Produtos eletrônicos"},
		{"Roupas", "Vestuário"},
		{"Alimentação", "Produtos alimentícios"},
		{"Casa e Jardim", "Produtos para casa"},
		{"Livros", "Livros e revistas"},
	}

	for _, c := range categories {
		cat, err := product.NewCategory(c.name, c.description)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO categories (id, name, description, active, created_at)
			VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING`,
			cat.ID, cat.Name, cat.Description, cat.Active, cat.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool) error {
	products := []seedProduct{
		{"Smartphone Samsung Galaxy A54", 1299.90, 899.90, "7891234567890", "Eletrônicos", "Samsung", 15, 3, 50, "A1"},
		{"Notebook Dell Inspiron 15", 2499.90, 1899.90, "7891234567891", "Eletrônicos", "Dell", 8, 2, 20, "A2"},
		{"Camiseta Polo Masculina", 89.90, 45.90, "7891234567892", "Roupas", "Lacoste", 40, 10, 100, "B1"},
		{"Arroz 5kg", 18.90, 12.90, "7891234567893", "Alimentação", "Tio João", 120, 30, 300, "C1"},
		{"Livro Python para Iniciantes", 79.90, 45.90, "7891234567894", "Livros", "Casa do Código", 25, 5, 60, "D1"},
		{"Mesa de Centro", 459.90, 299.90, "7891234567895", "Casa e Jardim", "Tok&Stok", 5, 2, 12, "E1"},
		{"Fone de Ouvido Bluetooth", 199.90, 129.90, "7891234567896", "Eletrônicos", "Sony", 30, 8, 80, "A3"},
		{"Calça Jeans Feminina", 129.90, 79.90, "7891234567897", "Roupas", "Levi's", 35, 10, 90, "B2"},
	}

	for _, sp := range products {
		p, err := product.NewProduct(sp.name, sp.price, sp.costPrice, sp.barcode, sp.category)
		if err != nil {
			return err
		}
		p.Brand = sp.brand

		_, err = pool.Exec(ctx,
			`INSERT INTO products (id, name, description, price, cost_price, barcode,
				category, brand, weight, dimensions, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			p.ID, p.Name, p.Description, p.Price, p.CostPrice, p.Barcode,
			p.Category, p.Brand, p.Weight, p.Dimensions, p.Active, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return err
		}

		inv, err := inventory.NewInventory(p.ID, sp.quantity, sp.minStock, sp.maxStock, sp.location)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO inventory (id, product_id, quantity, min_stock, max_stock, location, last_updated)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			inv.ID, inv.ProductID, inv.Quantity, inv.MinStock, inv.MaxStock, inv.Location, inv.LastUpdated)
		if err != nil {
			return err
		}

		mov := inv.InitialMovement()
		_, err = pool.Exec(ctx,
			`INSERT INTO inventory_movements (id, product_id, movement_type, quantity,
				previous_quantity, new_quantity, reason, reference_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULL, $8)`,
			mov.ID, mov.ProductID, mov.MovementType, mov.Quantity,
			mov.PreviousQuantity, mov.NewQuantity, mov.Reason, mov.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPaymentMethods(ctx context.Context, pool *pgxpool.Pool) error {
	methods := []seedMethod{
		{"Dinheiro", "cash", false, 0},
		{"Cartão de Crédito", "credit_card", true, 3.5},
		{"Cartão de Débito", "debit_card", false, 2.0},
		{"PIX", "pix", false, 0},
	}

	for _, sm := range methods {
		m, err := payment.NewMethod(sm.name, sm.methodType, sm.requiresApproval, sm.feePercentage)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO payment_methods (id, name, type, requires_approval, fee_percentage, active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (name) DO NOTHING`,
			m.ID, m.Name, m.Type, m.RequiresApproval, m.FeePercentage, m.Active, m.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCustomers(ctx context.Context, pool *pgxpool.Pool) error {
	customers := []struct{ name, email, document, phone string }{
		{"João Silva", "joao.silva@email.com", "123.456.789-00", "(11) 99999-1111"},
		{"Maria Santos", "maria.santos@email.com", "987.654.321-00", "(11) 99999-2222"},
		{"Mercado Central Ltda", "compras@mercadocentral.com.br", "12.345.678/0001-90", "(11) 3333-4444"},
	}

	for _, sc := range customers {
		c, err := customer.NewCustomer(sc.name, sc.email, sc.document)
		if err != nil {
			return err
		}
		c.Phone = sc.phone

		_, err = pool.Exec(ctx,
			`INSERT INTO customers (id, name, email, phone, document, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (email) DO NOTHING`,
			c.ID, c.Name, c.Email, c.Phone, c.Document, c.Active, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}
