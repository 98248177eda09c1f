package dto

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/hugohenrick/pdv-backoffice/internal/domain/report"
)

// SalesReportResponse representa o relatório de vendas em JSON
type SalesReportResponse struct {
	Period  PeriodResponse      `json:"period"`
	Summary report.SalesSummary `json:"summary"`
	Sales   []*report.SalesRow  `json:"sales"`
}

// PeriodResponse representa o intervalo de datas de um relatório
type PeriodResponse struct {
	StartDate string `json:"start_date"` // dd/mm/aaaa
	EndDate   string `json:"end_date"`   // dd/mm/aaaa
}

// TopProductsResponse representa o relatório de mais vendidos
type TopProductsResponse struct {
	Period   PeriodResponse       `json:"period"`
	Products []*report.TopProduct `json:"products"`
}

// TopCustomersResponse representa o relatório de melhores clientes
type TopCustomersResponse struct {
	Period    PeriodResponse        `json:"period"`
	Customers []*report.TopCustomer `json:"customers"`
}

// LowStockReportResponse representa o relatório de estoque baixo
type LowStockReportResponse struct {
	TotalItems int         `json:"total_items"`
	Items      interface{} `json:"items"`
}

// SalesReportCSV gera o relatório de vendas em formato CSV
func SalesReportCSV(rows []*report.SalesRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Data", "Cliente", "Valor Total", "Desconto",
		"Valor Final", "Método Pagamento", "Status", "Qtd Itens"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ID,
			row.Date,
			row.Customer,
			fmt.Sprintf("%.2f", row.TotalAmount),
			fmt.Sprintf("%.2f", row.Discount),
			fmt.Sprintf("%.2f", row.FinalAmount),
			row.PaymentMethod,
			row.PaymentStatus,
			fmt.Sprintf("%d", row.ItemsCount),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar CSV: %w", err)
	}
	return buf.Bytes(), nil
}
