package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/inventory"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/payment"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/product"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/sale"
	"github.com/hugohenrick/pdv-backoffice/internal/infrastructure/database"
)

// Testes de integração: exigem um Postgres acessível via DATABASE_URL.
// Sem a variável, são ignorados.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL não definido, pulando teste de integração")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.EnsureSchema(context.Background(), pool))
	return pool
}

func createTestProduct(t *testing.T, pool *pgxpool.Pool, name string, price float64) *product.Product {
	t.Helper()

	p, err := product.NewProduct(name, price, price/2, "", "Testes")
	require.NoError(t, err)
	require.NoError(t, NewProductRepository(pool).Create(context.Background(), p))

	t.Cleanup(func() {
		ctx := context.Background()
		pool.Exec(ctx, `DELETE FROM inventory_movements WHERE product_id = $1`, p.ID)
		pool.Exec(ctx, `DELETE FROM inventory WHERE product_id = $1`, p.ID)
		pool.Exec(ctx, `DELETE FROM sale_items WHERE product_id = $1`, p.ID)
		pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, p.ID)
	})
	return p
}

func createTestInventory(t *testing.T, pool *pgxpool.Pool, productID string, quantity int) *inventory.Inventory {
	t.Helper()

	inv, err := inventory.NewInventory(productID, quantity, 1, 0, "Depósito")
	require.NoError(t, err)
	require.NoError(t, NewInventoryRepository(pool).Save(context.Background(), inv, inv.InitialMovement()))
	return inv
}

func cleanupSale(t *testing.T, pool *pgxpool.Pool, saleID string) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		pool.Exec(ctx, `DELETE FROM payments WHERE sale_id = $1`, saleID)
		pool.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
		pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	})
}

func newTestSale(t *testing.T, productID string, quantity int, unitPrice float64) *sale.Sale {
	t.Helper()

	item, err := sale.NewItem(productID, quantity, unitPrice, 0)
	require.NoError(t, err)
	s, err := sale.NewSale("", "cash", 0, "", []*sale.Item{item})
	require.NoError(t, err)
	return s
}

func TestSaleRepositoryCreate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	saleRepo := NewSaleRepository(pool)
	invRepo := NewInventoryRepository(pool)

	t.Run("venda baixa o estoque e registra um movimento de saída", func(t *testing.T) {
		p := createTestProduct(t, pool, "Café Integração 500g", 15.90)
		createTestInventory(t, pool, p.ID, 10)

		s := newTestSale(t, p.ID, 3, 15.90)
		cleanupSale(t, pool, s.ID)
		require.NoError(t, saleRepo.Create(ctx, s))

		inv, err := invRepo.FindByProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, inv.Quantity)

		movs, err := invRepo.ListMovements(ctx, p.ID, 0, 100)
		require.NoError(t, err)

		var outs []*inventory.Movement
		for _, m := range movs {
			if m.MovementType == inventory.MovementOut {
				outs = append(outs, m)
			}
		}
		require.Len(t, outs, 1)
		assert.Equal(t, 10, outs[0].PreviousQuantity)
		assert.Equal(t, 7, outs[0].NewQuantity)
		assert.Equal(t, s.ID, outs[0].ReferenceID)
	})

	t.Run("estoque insuficiente desfaz a venda inteira", func(t *testing.T) {
		p := createTestProduct(t, pool, "Leite Integração 1L", 5.50)
		createTestInventory(t, pool, p.ID, 2)

		s := newTestSale(t, p.ID, 5, 5.50)
		cleanupSale(t, pool, s.ID)
		err := saleRepo.Create(ctx, s)
		require.ErrorIs(t, err, ErrInsufficientStock)

		// Nada da venda pode ter sido gravado
		_, err = saleRepo.FindByID(ctx, s.ID)
		assert.ErrorIs(t, err, ErrSaleNotFound)

		inv, err := invRepo.FindByProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, inv.Quantity)

		movs, err := invRepo.ListMovements(ctx, p.ID, 0, 100)
		require.NoError(t, err)
		for _, m := range movs {
			assert.NotEqual(t, inventory.MovementOut, m.MovementType)
		}
	})

	t.Run("produto inativo no meio da venda desfaz itens anteriores", func(t *testing.T) {
		pOK := createTestProduct(t, pool, "Açúcar Integração 1kg", 4.20)
		createTestInventory(t, pool, pOK.ID, 10)

		pInativo := createTestProduct(t, pool, "Sal Integração 1kg", 2.10)
		require.NoError(t, NewProductRepository(pool).Deactivate(ctx, pInativo.ID))

		item1, err := sale.NewItem(pOK.ID, 2, 4.20, 0)
		require.NoError(t, err)
		item2, err := sale.NewItem(pInativo.ID, 1, 2.10, 0)
		require.NoError(t, err)
		s, err := sale.NewSale("", "cash", 0, "", []*sale.Item{item1, item2})
		require.NoError(t, err)
		cleanupSale(t, pool, s.ID)

		err = saleRepo.Create(ctx, s)
		require.ErrorIs(t, err, ErrSaleProductGone)

		_, err = saleRepo.FindByID(ctx, s.ID)
		assert.ErrorIs(t, err, ErrSaleNotFound)

		// A baixa do primeiro item também foi desfeita
		inv, err := invRepo.FindByProduct(ctx, pOK.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, inv.Quantity)
	})

	t.Run("produto sem registro de estoque vende sem baixa", func(t *testing.T) {
		p := createTestProduct(t, pool, "Serviço Integração", 30)

		s := newTestSale(t, p.ID, 1, 30)
		cleanupSale(t, pool, s.ID)
		require.NoError(t, saleRepo.Create(ctx, s))

		found, err := saleRepo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Len(t, found.Items, 1)

		_, err = invRepo.FindByProduct(ctx, p.ID)
		assert.ErrorIs(t, err, ErrInventoryNotFound)
	})
}

func TestPaymentRepositoryCreate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	saleRepo := NewSaleRepository(pool)
	payRepo := NewPaymentRepository(pool)

	method, err := payment.NewMethod("Dinheiro Integração "+uuid.NewString()[:8], "cash", false, 0)
	require.NoError(t, err)
	require.NoError(t, payRepo.CreateMethod(ctx, method))
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, method.ID)
	})

	newPaidSale := func(t *testing.T) *sale.Sale {
		t.Helper()
		p := createTestProduct(t, pool, "Produto Pagamento", 20)
		s := newTestSale(t, p.ID, 1, 20)
		cleanupSale(t, pool, s.ID)
		require.NoError(t, saleRepo.Create(ctx, s))
		return s
	}

	t.Run("pagamento aprovado marca a venda como paga", func(t *testing.T) {
		s := newPaidSale(t)

		pay, err := payment.NewPayment(s.ID, method, s.FinalAmount, "", "")
		require.NoError(t, err)
		require.NoError(t, payRepo.Create(ctx, pay))

		found, err := saleRepo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusPaid, found.PaymentStatus)
	})

	t.Run("venda já paga ainda aceita pagamento", func(t *testing.T) {
		s := newPaidSale(t)
		s.PaymentStatus = sale.StatusPaid
		require.NoError(t, saleRepo.Update(ctx, s))

		pay, err := payment.NewPayment(s.ID, method, s.FinalAmount, "", "")
		require.NoError(t, err)
		require.NoError(t, payRepo.Create(ctx, pay))

		txs, err := payRepo.List(ctx, payment.Filter{SaleID: s.ID, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("venda inexistente é rejeitada", func(t *testing.T) {
		pay, err := payment.NewPayment("00000000-0000-0000-0000-000000000000", method, 10, "", "")
		require.NoError(t, err)
		assert.ErrorIs(t, payRepo.Create(ctx, pay), ErrPaymentSaleGone)
	})
}
