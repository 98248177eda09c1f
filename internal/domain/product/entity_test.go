package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("produto válido", func(t *testing.T) {
		p, err := NewProduct("Arroz 5kg", 18.90, 12.90, "7891234567893", "Alimentação")
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Arroz 5kg", p.Name)
		assert.Equal(t, 18.90, p.Price)
		assert.True(t, p.Active)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("nome vazio é rejeitado", func(t *testing.T) {
		_, err := NewProduct("", 10, 5, "", "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("preço negativo é rejeitado", func(t *testing.T) {
		_, err := NewProduct("Produto", -0.01, 0, "", "")
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("preço zero é aceito", func(t *testing.T) {
		_, err := NewProduct("Brinde", 0, 0, "", "")
		assert.NoError(t, err)
	})
}

func TestProduct_Deactivate(t *testing.T) {
	p, err := NewProduct("Fone Bluetooth", 199.90, 129.90, "7891234567896", "Eletrônicos")
	require.NoError(t, err)

	p.Deactivate()

	assert.False(t, p.Active)
	assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
}

func TestProduct_Validate(t *testing.T) {
	p, err := NewProduct("Camiseta", 89.90, 45.90, "", "Roupas")
	require.NoError(t, err)

	p.Price = -1
	assert.ErrorIs(t, p.Validate(), ErrInvalidPrice)

	p.Price = 89.90
	p.Name = ""
	assert.ErrorIs(t, p.Validate(), ErrEmptyName)
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Eletrônicos", "Produtos eletrônicos")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.True(t, c.Active)

	_, err = NewCategory("", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}
