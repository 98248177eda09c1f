package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/product"
	"github.com/hugohenrick/pdv-backoffice/internal/domain/report"
)

func TestGetPagination(t *testing.T) {
	t.Run("valores padrão", func(t *testing.T) {
		p := GetPagination(0, 0)
		assert.Equal(t, 0, p.Skip)
		assert.Equal(t, 100, p.Limit)
	})

	t.Run("skip negativo vira zero", func(t *testing.T) {
		p := GetPagination(-10, 50)
		assert.Equal(t, 0, p.Skip)
		assert.Equal(t, 50, p.Limit)
	})

	t.Run("limit acima do teto é limitado", func(t *testing.T) {
		p := GetPagination(20, 5000)
		assert.Equal(t, 20, p.Skip)
		assert.Equal(t, 1000, p.Limit)
	})
}

func TestProductRequestPriceZero(t *testing.T) {
	t.Run("preço zero é aceito", func(t *testing.T) {
		req := ProductRequest{Name: "Sacola", Price: 0}
		assert.NoError(t, binding.Validator.ValidateStruct(&req))
	})

	t.Run("preço negativo é rejeitado", func(t *testing.T) {
		req := ProductRequest{Name: "Sacola", Price: -1}
		assert.Error(t, binding.Validator.ValidateStruct(&req))
	})
}

func TestSaleItemRequestUnitPriceZero(t *testing.T) {
	item := SaleItemRequest{ProductID: "p1", Quantity: 1, UnitPrice: 0}
	assert.NoError(t, binding.Validator.ValidateStruct(&item))

	item.UnitPrice = -0.5
	assert.Error(t, binding.Validator.ValidateStruct(&item))
}

func TestProductUpdateRequestApply(t *testing.T) {
	p, err := product.NewProduct("Arroz 5kg", 18.90, 12.90, "789123", "Alimentação")
	require.NoError(t, err)

	newPrice := 19.90
	newName := "Arroz Tipo 1 5kg"
	req := ProductUpdateRequest{Name: &newName, Price: &newPrice}
	req.Apply(p)

	assert.Equal(t, "Arroz Tipo 1 5kg", p.Name)
	assert.Equal(t, 19.90, p.Price)

	// Campos ausentes são preservados
	assert.Equal(t, 12.90, p.CostPrice)
	assert.Equal(t, "789123", p.Barcode)
	assert.True(t, p.Active)
}

func TestSalesReportCSV(t *testing.T) {
	rows := []*report.SalesRow{
		{
			ID:            "abc-123",
			Date:          "15/08/2026 14:30",
			Customer:      "João Silva",
			TotalAmount:   100,
			Discount:      10,
			FinalAmount:   90,
			PaymentMethod: "PIX",
			PaymentStatus: "paid",
			ItemsCount:    2,
		},
	}

	data, err := SalesReportCSV(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Data,Cliente,Valor Total,Desconto,Valor Final,Método Pagamento,Status,Qtd Itens", lines[0])
	assert.Contains(t, lines[1], "abc-123")
	assert.Contains(t, lines[1], "90.00")
	assert.Contains(t, lines[1], "João Silva")
}

func TestSalesReportCSVEmpty(t *testing.T) {
	data, err := SalesReportCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1)
}
