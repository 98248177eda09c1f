package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("item sem desconto", func(t *testing.T) {
		item, err := NewItem("prod-1", 3, 10.0, 0)
		require.NoError(t, err)

		assert.Equal(t, 30.0, item.TotalPrice)
		assert.Equal(t, 0.0, item.DiscountAmount)
	})

	t.Run("desconto percentual por item", func(t *testing.T) {
		// 2 × 50.00 com 10% = desconto 10.00, total 90.00
		item, err := NewItem("prod-1", 2, 50.0, 10)
		require.NoError(t, err)

		assert.Equal(t, 10.0, item.DiscountAmount)
		assert.Equal(t, 90.0, item.TotalPrice)
		assert.InDelta(t, item.UnitPrice*float64(item.Quantity)-item.DiscountAmount, item.TotalPrice, 1e-9)
	})

	t.Run("quantidade inválida", func(t *testing.T) {
		_, err := NewItem("prod-1", 0, 10.0, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = NewItem("prod-1", -2, 10.0, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("preço negativo", func(t *testing.T) {
		_, err := NewItem("prod-1", 1, -1.0, 0)
		assert.ErrorIs(t, err, ErrInvalidUnitPrice)
	})
}

func TestNewSale(t *testing.T) {
	t.Run("totais somam os itens e aplicam desconto do cabeçalho", func(t *testing.T) {
		itemA, err := NewItem("prod-a", 2, 50.0, 10) // 90.00
		require.NoError(t, err)
		itemB, err := NewItem("prod-b", 1, 25.0, 0) // 25.00
		require.NoError(t, err)

		s, err := NewSale("cust-1", "Dinheiro", 5.0, "obs", []*Item{itemA, itemB})
		require.NoError(t, err)

		assert.Equal(t, 115.0, s.TotalAmount)
		assert.Equal(t, 110.0, s.FinalAmount)
		assert.Equal(t, StatusPending, s.PaymentStatus)
		assert.Len(t, s.Items, 2)
		for _, item := range s.Items {
			assert.Equal(t, s.ID, item.SaleID)
		}
	})

	t.Run("cliente é opcional", func(t *testing.T) {
		item, err := NewItem("prod-a", 1, 10.0, 0)
		require.NoError(t, err)

		s, err := NewSale("", "PIX", 0, "", []*Item{item})
		require.NoError(t, err)
		assert.Empty(t, s.CustomerID)
	})

	t.Run("venda sem itens é rejeitada", func(t *testing.T) {
		_, err := NewSale("", "Dinheiro", 0, "", nil)
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("método de pagamento obrigatório", func(t *testing.T) {
		item, err := NewItem("prod-a", 1, 10.0, 0)
		require.NoError(t, err)

		_, err = NewSale("", "", 0, "", []*Item{item})
		assert.ErrorIs(t, err, ErrEmptyPaymentMethod)
	})

	t.Run("invariante total/final para N itens", func(t *testing.T) {
		var items []*Item
		var sum float64
		prices := []float64{12.5, 8.9, 199.9, 0.5}
		for i, price := range prices {
			item, err := NewItem("prod", i+1, price, float64(i*5))
			require.NoError(t, err)
			items = append(items, item)
			sum += item.TotalPrice
		}

		s, err := NewSale("", "Cartão de Crédito", 7.5, "", items)
		require.NoError(t, err)
		assert.InDelta(t, sum, s.TotalAmount, 1e-9)
		assert.InDelta(t, s.TotalAmount-7.5, s.FinalAmount, 1e-9)
	})
}

func TestSale_MarkPaid(t *testing.T) {
	item, err := NewItem("prod-a", 1, 10.0, 0)
	require.NoError(t, err)
	s, err := NewSale("", "Dinheiro", 0, "", []*Item{item})
	require.NoError(t, err)

	s.MarkPaid()
	assert.Equal(t, StatusPaid, s.PaymentStatus)
}
