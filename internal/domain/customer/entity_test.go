package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("cliente válido", func(t *testing.T) {
		c, err := NewCustomer("João Silva", "joao.silva@email.com", "123.456.789-00")
		require.NoError(t, err)

		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "João Silva", c.Name)
		assert.True(t, c.Active)
	})

	t.Run("email e documento são opcionais", func(t *testing.T) {
		c, err := NewCustomer("Cliente Balcão", "", "")
		require.NoError(t, err)
		assert.Empty(t, c.Email)
		assert.Empty(t, c.Document)
	})

	t.Run("nome vazio é rejeitado", func(t *testing.T) {
		_, err := NewCustomer("", "a@b.com", "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("email sem arroba é rejeitado", func(t *testing.T) {
		_, err := NewCustomer("Maria", "maria.email.com", "")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestCustomer_Deactivate(t *testing.T) {
	c, err := NewCustomer("Maria Santos", "maria@email.com", "987.654.321-00")
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.Active)
}
