package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-backoffice/internal/adapter/repository"
	saledomain "github.com/hugohenrick/pdv-backoffice/internal/domain/sale"
	"github.com/hugohenrick/pdv-backoffice/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo saledomain.Repository
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Create registra uma nova venda
// @Summary Criar venda
// @Description Registra a venda com itens, baixa de estoque e movimentos em uma transação
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items := make([]*saledomain.Item, 0, len(req.Items))
	for _, ir := range req.Items {
		item, err := saledomain.NewItem(ir.ProductID, ir.Quantity, ir.UnitPrice, ir.DiscountPercentage)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "item inválido", err.Error()))
			return
		}
		items = append(items, item)
	}

	s, err := saledomain.NewSale(req.CustomerID, req.PaymentMethod, req.DiscountAmount, req.Notes, items)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "venda inválida", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrSaleProductGone) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado ou inativo", err.Error()))
			return
		}
		if errors.Is(err, repository.ErrInsufficientStock) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque insuficiente", err.Error()))
			return
		}
		c.logger.Error("erro ao criar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// List lista vendas com filtros e paginação
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param skip query int false "Registros a pular"
// @Param limit query int false "Tamanho da página"
// @Param customer_id query string false "Filtro por cliente"
// @Param payment_status query string false "Filtro por status de pagamento"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	pagination := dto.GetPagination(skip, limit)

	filter := saledomain.Filter{
		CustomerID:    ctx.Query("customer_id"),
		PaymentStatus: ctx.Query("payment_status"),
		Skip:          pagination.Skip,
		Limit:         pagination.Limit,
	}

	if v := ctx.Query("start_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "start_date inválida, use YYYY-MM-DD", err.Error()))
			return
		}
		filter.StartDate = &d
	}
	if v := ctx.Query("end_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "end_date inválida, use YYYY-MM-DD", err.Error()))
			return
		}
		filter.EndDate = &d
	}

	sales, err := c.saleRepo.List(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponseList(sales))
}

// Get busca uma venda com seus itens
// @Summary Buscar venda
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Update atualiza status de pagamento e observações de uma venda
// @Summary Atualizar venda
// @Description Somente payment_status e notes são mutáveis
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param sale body dto.SaleUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	var req dto.SaleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.saleRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	if req.PaymentStatus != nil {
		s.PaymentStatus = saledomain.Status(*req.PaymentStatus)
	}
	if req.Notes != nil {
		s.Notes = *req.Notes
	}
	s.UpdatedAt = time.Now()

	if err := c.saleRepo.Update(ctx, s); err != nil {
		c.logger.Error("erro ao atualizar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// Receipt monta o recibo de uma venda
// @Summary Recibo da venda
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} sale.Receipt
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id}/receipt [get]
func (c *SaleController) Receipt(ctx *gin.Context) {
	receipt, err := c.saleRepo.BuildReceipt(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao montar recibo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar recibo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, receipt)
}

// TodaySummary resume as vendas do dia corrente
// @Summary Resumo de vendas do dia
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} sale.DaySummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/today/summary [get]
func (c *SaleController) TodaySummary(ctx *gin.Context) {
	summary, err := c.saleRepo.TodaySummary(ctx)
	if err != nil {
		c.logger.Error("erro ao resumir vendas do dia", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao resumir vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
