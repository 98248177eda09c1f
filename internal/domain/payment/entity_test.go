package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMethod(t *testing.T) {
	m, err := NewMethod("Cartão de Crédito", "credit_card", true, 3.5)
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.True(t, m.RequiresApproval)
	assert.True(t, m.Active)

	_, err = NewMethod("", "cash", false, 0)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewMethod("Dinheiro", "", false, 0)
	assert.ErrorIs(t, err, ErrEmptyType)

	_, err = NewMethod("Dinheiro", "cash", false, -1)
	assert.ErrorIs(t, err, ErrInvalidFee)
}

func TestNewPayment_CalculoDaTaxa(t *testing.T) {
	method, err := NewMethod("Cartão de Débito", "debit_card", false, 3.5)
	require.NoError(t, err)

	p, err := NewPayment("sale-1", method, 100.0, "AUTH123", "TX456")
	require.NoError(t, err)

	assert.Equal(t, 3.5, p.FeeAmount)
	assert.Equal(t, 96.5, p.NetAmount)
	assert.Equal(t, 100.0, p.Amount)
	assert.Equal(t, "AUTH123", p.AuthorizationCode)
	assert.InDelta(t, p.Amount-p.FeeAmount, p.NetAmount, 1e-9)
}

func TestNewPayment_StatusPorAprovacao(t *testing.T) {
	t.Run("método sem aprovação manual aprova imediatamente", func(t *testing.T) {
		method, err := NewMethod("Dinheiro", "cash", false, 0)
		require.NoError(t, err)

		p, err := NewPayment("sale-1", method, 50.0, "", "")
		require.NoError(t, err)

		assert.Equal(t, StatusApproved, p.Status)
		assert.True(t, p.IsApproved())
		require.NotNil(t, p.ProcessedAt)
		assert.Equal(t, 0.0, p.FeeAmount)
		assert.Equal(t, 50.0, p.NetAmount)
	})

	t.Run("método com aprovação manual fica pendente", func(t *testing.T) {
		method, err := NewMethod("Cartão de Crédito", "credit_card", true, 3.5)
		require.NoError(t, err)

		p, err := NewPayment("sale-1", method, 50.0, "", "")
		require.NoError(t, err)

		assert.Equal(t, StatusPending, p.Status)
		assert.False(t, p.IsApproved())
		assert.Nil(t, p.ProcessedAt)
	})
}

func TestNewPayment_ValorInvalido(t *testing.T) {
	method, err := NewMethod("PIX", "pix", false, 0)
	require.NoError(t, err)

	_, err = NewPayment("sale-1", method, 0, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewPayment("sale-1", method, -10, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
