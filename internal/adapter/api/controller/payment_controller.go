package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-backoffice/internal/adapter/repository"
	paymentdomain "github.com/hugohenrick/pdv-backoffice/internal/domain/payment"
	"github.com/hugohenrick/pdv-backoffice/pkg/logger"
)

// PaymentController gerencia métodos de pagamento e processamento
type PaymentController struct {
	paymentRepo paymentdomain.Repository
	logger      logger.Logger
}

// NewPaymentController cria uma nova instância de PaymentController
func NewPaymentController(paymentRepo paymentdomain.Repository, logger logger.Logger) *PaymentController {
	return &PaymentController{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// CreateMethod cria um novo método de pagamento
// @Summary Criar método de pagamento
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param method body dto.PaymentMethodRequest true "Dados do método"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /payments/methods [post]
func (c *PaymentController) CreateMethod(ctx *gin.Context) {
	var req dto.PaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	m, err := paymentdomain.NewMethod(req.Name, req.Type, req.RequiresApproval, req.FeePercentage)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar método", err.Error()))
		return
	}

	if err := c.paymentRepo.CreateMethod(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMethodDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "método já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar método de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar método", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(m))
}

// ListMethods lista os métodos de pagamento
// @Summary Listar métodos de pagamento
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param active query string false "true, false ou all"
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments/methods [get]
func (c *PaymentController) ListMethods(ctx *gin.Context) {
	methods, err := c.paymentRepo.ListMethods(ctx, ctx.DefaultQuery("active", "true"))
	if err != nil {
		c.logger.Error("erro ao listar métodos de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar métodos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodResponseList(methods))
}

// GetMethod busca um método de pagamento pelo ID
// @Summary Buscar método de pagamento
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do método"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/methods/{id} [get]
func (c *PaymentController) GetMethod(ctx *gin.Context) {
	m, err := c.paymentRepo.FindMethodByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMethodNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "método não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar método de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar método", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodResponse(m))
}

// UpdateMethod atualiza um método de pagamento
// @Summary Atualizar método de pagamento
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do método"
// @Param method body dto.PaymentMethodUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /payments/methods/{id} [put]
func (c *PaymentController) UpdateMethod(ctx *gin.Context) {
	var req dto.PaymentMethodUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	m, err := c.paymentRepo.FindMethodByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrMethodNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "método não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar método de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar método", err.Error()))
		return
	}

	req.Apply(m)
	if err := m.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.paymentRepo.UpdateMethod(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMethodDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "método já cadastrado", err.Error()))
			return
		}
		if errors.Is(err, repository.ErrMethodNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "método não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar método de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar método", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodResponse(m))
}

// DeleteMethod desativa um método de pagamento (soft delete)
// @Summary Desativar método de pagamento
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do método"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/methods/{id} [delete]
func (c *PaymentController) DeleteMethod(ctx *gin.Context) {
	if err := c.paymentRepo.DeactivateMethod(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrMethodNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "método não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao desativar método de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao desativar método", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("método desativado com sucesso", nil))
}

// Process processa o pagamento de uma venda
// @Summary Processar pagamento
// @Description Calcula taxa e líquido; aprova ou deixa pendente conforme o método
// @Tags payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale_id path string true "ID da venda"
// @Param payment body dto.ProcessPaymentRequest true "Dados do pagamento"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/process/{sale_id} [post]
func (c *PaymentController) Process(ctx *gin.Context) {
	var req dto.ProcessPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	method, err := c.paymentRepo.FindMethodByID(ctx, req.PaymentMethodID)
	if err != nil {
		if errors.Is(err, repository.ErrMethodNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "método não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar método de pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar método", err.Error()))
		return
	}

	p, err := paymentdomain.NewPayment(ctx.Param("sale_id"), method, req.Amount, req.AuthorizationCode, req.TransactionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "pagamento inválido", err.Error()))
		return
	}

	if err := c.paymentRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrPaymentSaleGone) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao processar pagamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao processar pagamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(p))
}

// ListTransactions lista as transações de pagamento
// @Summary Listar transações
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param skip query int false "Registros a pular"
// @Param limit query int false "Tamanho da página"
// @Param sale_id query string false "Filtro por venda"
// @Param payment_method_id query string false "Filtro por método"
// @Param status query string false "Filtro por status"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /payments/transactions [get]
func (c *PaymentController) ListTransactions(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	pagination := dto.GetPagination(skip, limit)

	filter := paymentdomain.Filter{
		SaleID:          ctx.Query("sale_id"),
		PaymentMethodID: ctx.Query("payment_method_id"),
		Status:          ctx.Query("status"),
		Skip:            pagination.Skip,
		Limit:           pagination.Limit,
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

	payments, err := c.paymentRepo.List(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao listar transações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar transações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentWithMethodResponseList(payments))
}

// Summary resume os pagamentos aprovados do período
// @Summary Resumo de pagamentos
// @Tags payments
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Success 200 {object} dto.PaymentSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /payments/summary [get]
func (c *PaymentController) Summary(ctx *gin.Context) {
	var start, end *time.Time
	if v := ctx.Query("start_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "start_date inválida, use YYYY-MM-DD", err.Error()))
			return
		}
		start = &d
	}
	if v := ctx.Query("end_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "end_date inválida, use YYYY-MM-DD", err.Error()))
			return
		}
		end = &d
	}

	byMethod, totals, err := c.paymentRepo.Summarize(ctx, start, end)
	if err != nil {
		c.logger.Error("erro ao resumir pagamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao resumir pagamentos", err.Error()))
		return
	}

	resp := dto.PaymentSummaryResponse{
		ByMethod: make(map[string]paymentdomain.MethodSummary, len(byMethod)),
		Totals:   *totals,
	}
	for name, ms := range byMethod {
		resp.ByMethod[name] = *ms
	}
	ctx.JSON(http.StatusOK, resp)
}
