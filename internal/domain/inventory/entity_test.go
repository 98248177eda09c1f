package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventory(t *testing.T) {
	inv, err := NewInventory("prod-1", 50, 10, 100, "A1-B2")
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, 50, inv.Quantity)
	assert.Equal(t, 10, inv.MinStock)

	_, err = NewInventory("", 10, 0, 0, "")
	assert.ErrorIs(t, err, ErrEmptyProduct)

	_, err = NewInventory("prod-1", -1, 0, 0, "")
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestMovement_DeltaAssinado(t *testing.T) {
	t.Run("entrada", func(t *testing.T) {
		m := NewMovement("prod-1", MovementIn, 0, 30, "Estoque inicial", "")
		assert.Equal(t, 30, m.Quantity)
		assert.Equal(t, m.NewQuantity-m.PreviousQuantity, m.Quantity)
	})

	t.Run("saída", func(t *testing.T) {
		m := NewMovement("prod-1", MovementOut, 30, 27, "Venda #abc", "sale-abc")
		assert.Equal(t, -3, m.Quantity)
		assert.Equal(t, "sale-abc", m.ReferenceID)
	})
}

func TestInventory_AdjustTo(t *testing.T) {
	inv, err := NewInventory("prod-1", 20, 5, 100, "")
	require.NoError(t, err)

	t.Run("ajuste para baixo", func(t *testing.T) {
		mov, err := inv.AdjustTo(12, "Inventário físico")
		require.NoError(t, err)

		assert.Equal(t, 12, inv.Quantity)
		assert.Equal(t, MovementAdjustment, mov.MovementType)
		assert.Equal(t, 20, mov.PreviousQuantity)
		assert.Equal(t, 12, mov.NewQuantity)
		assert.Equal(t, -8, mov.Quantity)
		assert.Equal(t, "Inventário físico", mov.Reason)
	})

	t.Run("alvo negativo é rejeitado sem mutação", func(t *testing.T) {
		before := inv.Quantity
		_, err := inv.AdjustTo(-5, "erro")
		assert.ErrorIs(t, err, ErrNegativeQuantity)
		assert.Equal(t, before, inv.Quantity)
	})
}

func TestInventory_Overwrite(t *testing.T) {
	inv, err := NewInventory("prod-1", 20, 5, 100, "A1")
	require.NoError(t, err)

	t.Run("quantidade alterada gera movimento", func(t *testing.T) {
		mov, err := inv.Overwrite(35, 8, 120, "B2")
		require.NoError(t, err)
		require.NotNil(t, mov)

		assert.Equal(t, 15, mov.Quantity)
		assert.Equal(t, 35, inv.Quantity)
		assert.Equal(t, 8, inv.MinStock)
		assert.Equal(t, "B2", inv.Location)
	})

	t.Run("quantidade igual não gera movimento", func(t *testing.T) {
		mov, err := inv.Overwrite(35, 10, 150, "C3")
		require.NoError(t, err)
		assert.Nil(t, mov)
		assert.Equal(t, 10, inv.MinStock)
	})
}

func TestInventory_IsLowStock(t *testing.T) {
	inv, err := NewInventory("prod-1", 10, 10, 100, "")
	require.NoError(t, err)

	assert.True(t, inv.IsLowStock(), "igual ao mínimo conta como baixo")

	inv.Quantity = 11
	assert.False(t, inv.IsLowStock())

	inv.Quantity = 0
	assert.True(t, inv.IsLowStock())
}

func TestInventory_InitialMovement(t *testing.T) {
	inv, err := NewInventory("prod-1", 40, 5, 100, "")
	require.NoError(t, err)

	mov := inv.InitialMovement()
	assert.Equal(t, MovementIn, mov.MovementType)
	assert.Equal(t, 0, mov.PreviousQuantity)
	assert.Equal(t, 40, mov.NewQuantity)
	assert.Equal(t, 40, mov.Quantity)
}
