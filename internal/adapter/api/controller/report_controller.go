package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/dto"
	inventorydomain "github.com/hugohenrick/pdv-backoffice/internal/domain/inventory"
	reportdomain "github.com/hugohenrick/pdv-backoffice/internal/domain/report"
	"github.com/hugohenrick/pdv-backoffice/pkg/logger"
)

// ReportController gerencia os relatórios gerenciais (somente leitura)
type ReportController struct {
	reportRepo    reportdomain.Repository
	inventoryRepo inventorydomain.Repository
	logger        logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepo reportdomain.Repository, inventoryRepo inventorydomain.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		reportRepo:    reportRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// parsePeriod resolve start_date/end_date com default de 30 dias retroativos
func parsePeriod(ctx *gin.Context) (time.Time, time.Time, bool) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if v := ctx.Query("start_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "start_date inválida, use YYYY-MM-DD", err.Error()))
			return start, end, false
		}
		start = d
	}
	if v := ctx.Query("end_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "end_date inválida, use YYYY-MM-DD", err.Error()))
			return start, end, false
		}
		end = d
	}
	return start, end, true
}

// Sales gera o relatório de vendas em JSON ou CSV
// @Summary Relatório de vendas
// @Description Uma linha por venda do período com sumário; format=csv baixa o arquivo
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD, default 30 dias atrás)"
// @Param end_date query string false "Data final (YYYY-MM-DD, default hoje)"
// @Param format query string false "json ou csv"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	rows, summary, err := c.reportRepo.SalesReport(ctx, start, end)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	if ctx.Query("format") == "csv" {
		data, err := dto.SalesReportCSV(rows)
		if err != nil {
			c.logger.Error("erro ao gerar CSV", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar CSV", err.Error()))
			return
		}
		filename := fmt.Sprintf("relatorio_vendas_%s.csv", time.Now().Format("20060102_150405"))
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
		return
	}

	ctx.JSON(http.StatusOK, dto.SalesReportResponse{
		Period: dto.PeriodResponse{
			StartDate: start.Format("02/01/2006"),
			EndDate:   end.Format("02/01/2006"),
		},
		Summary: *summary,
		Sales:   rows,
	})
}

// TopProducts gera o relatório de produtos mais vendidos
// @Summary Produtos mais vendidos
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Param limit query int false "Quantidade de produtos (default 10)"
// @Success 200 {object} dto.TopProductsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports/products/top-selling [get]
func (c *ReportController) TopProducts(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	products, err := c.reportRepo.TopProducts(ctx, start, end, limit)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de mais vendidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.TopProductsResponse{
		Period: dto.PeriodResponse{
			StartDate: start.Format("02/01/2006"),
			EndDate:   end.Format("02/01/2006"),
		},
		Products: products,
	})
}

// LowStock gera o relatório de estoque baixo
// @Summary Relatório de estoque baixo
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.LowStockReportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/inventory/low-stock [get]
func (c *ReportController) LowStock(ctx *gin.Context) {
	items, err := c.inventoryRepo.ListLowStock(ctx)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	type lowStockRow struct {
		inventorydomain.LowStockItem
		Status string `json:"status"`
	}

	rows := make([]lowStockRow, 0, len(items))
	for _, it := range items {
		status := "BAIXO"
		if it.Quantity == 0 {
			status = "CRÍTICO"
		}
		rows = append(rows, lowStockRow{LowStockItem: *it, Status: status})
	}

	ctx.JSON(http.StatusOK, dto.LowStockReportResponse{
		TotalItems: len(rows),
		Items:      rows,
	})
}

// FinancialDaily gera o relatório financeiro de um dia
// @Summary Relatório financeiro diário
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param report_date query string false "Data do relatório (YYYY-MM-DD, default hoje)"
// @Success 200 {object} report.DailyFinancial
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports/financial/daily [get]
func (c *ReportController) FinancialDaily(ctx *gin.Context) {
	day := time.Now()
	if v := ctx.Query("report_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "report_date inválida, use YYYY-MM-DD", err.Error()))
			return
		}
		day = d
	}

	result, err := c.reportRepo.DailyFinancial(ctx, day)
	if err != nil {
		c.logger.Error("erro ao gerar relatório financeiro", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// TopCustomers gera o relatório de melhores clientes
// @Summary Melhores clientes
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Param limit query int false "Quantidade de clientes (default 10)"
// @Success 200 {object} dto.TopCustomersResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports/customers/top [get]
func (c *ReportController) TopCustomers(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	customers, err := c.reportRepo.TopCustomers(ctx, start, end, limit)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de melhores clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.TopCustomersResponse{
		Period: dto.PeriodResponse{
			StartDate: start.Format("02/01/2006"),
			EndDate:   end.Format("02/01/2006"),
		},
		Customers: customers,
	})
}

// Dashboard agrega os números do painel
// @Summary Painel gerencial
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} report.Dashboard
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/dashboard/summary [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	d, err := c.reportRepo.Dashboard(ctx)
	if err != nil {
		c.logger.Error("erro ao montar painel", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar painel", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, d)
}
