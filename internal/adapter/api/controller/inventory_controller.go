package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-backoffice/internal/adapter/repository"
	inventorydomain "github.com/hugohenrick/pdv-backoffice/internal/domain/inventory"
	productdomain "github.com/hugohenrick/pdv-backoffice/internal/domain/product"
	"github.com/hugohenrick/pdv-backoffice/pkg/logger"
)

// InventoryController gerencia as requisições relacionadas a estoque
type InventoryController struct {
	inventoryRepo inventorydomain.Repository
	productRepo   productdomain.Repository
	logger        logger.Logger
}

// NewInventoryController cria uma nova instância de InventoryController
func NewInventoryController(inventoryRepo inventorydomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *InventoryController {
	return &InventoryController{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

// Upsert cria ou sobrescreve o registro de estoque de um produto
// @Summary Criar ou sobrescrever estoque
// @Description Cria o registro com movimento inicial ou sobrescreve o existente
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param inventory body dto.InventoryRequest true "Dados de estoque"
// @Success 200 {object} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory [post]
func (c *InventoryController) Upsert(ctx *gin.Context) {
	var req dto.InventoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if _, err := c.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao verificar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar produto", err.Error()))
		return
	}

	inv, err := c.inventoryRepo.FindByProduct(ctx, req.ProductID)
	if err != nil && !errors.Is(err, repository.ErrInventoryNotFound) {
		c.logger.Error("erro ao buscar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar estoque", err.Error()))
		return
	}

	var mov *inventorydomain.Movement
	if inv == nil {
		inv, err = inventorydomain.NewInventory(req.ProductID, req.Quantity, req.MinStock, req.MaxStock, req.Location)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
			return
		}
		mov = inv.InitialMovement()
	} else {
		mov, err = inv.Overwrite(req.Quantity, req.MinStock, req.MaxStock, req.Location)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
			return
		}
	}

	if err := c.inventoryRepo.Save(ctx, inv, mov); err != nil {
		c.logger.Error("erro ao salvar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryResponse(inv))
}

// List lista registros de estoque com dados do produto
// @Summary Listar estoque
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param skip query int false "Registros a pular"
// @Param limit query int false "Tamanho da página"
// @Param low_stock query bool false "Apenas itens em estoque baixo"
// @Param product_name query string false "Busca por nome do produto"
// @Success 200 {array} dto.InventoryWithProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory [get]
func (c *InventoryController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	pagination := dto.GetPagination(skip, limit)

	filter := inventorydomain.Filter{
		LowStock:    ctx.Query("low_stock") == "true",
		ProductName: ctx.Query("product_name"),
		Skip:        pagination.Skip,
		Limit:       pagination.Limit,
	}

	items, err := c.inventoryRepo.List(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao listar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar estoque", err.Error()))
		return
	}

	result := make([]dto.InventoryWithProductResponse, 0, len(items))
	for _, it := range items {
		result = append(result, dto.ToInventoryWithProductResponse(it))
	}
	ctx.JSON(http.StatusOK, result)
}

// GetByProduct busca o registro de estoque de um produto
// @Summary Buscar estoque por produto
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id path string true "ID do produto"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/product/{product_id} [get]
func (c *InventoryController) GetByProduct(ctx *gin.Context) {
	inv, err := c.inventoryRepo.FindByProduct(ctx, ctx.Param("product_id"))
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "registro de estoque não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar estoque do produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryResponse(inv))
}

// Update atualiza parcialmente um registro de estoque
// @Summary Atualizar estoque
// @Description Mudança de quantidade gera movimento de ajuste
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do registro de estoque"
// @Param inventory body dto.InventoryUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/{id} [put]
func (c *InventoryController) Update(ctx *gin.Context) {
	var req dto.InventoryUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := c.inventoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "registro de estoque não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar estoque", err.Error()))
		return
	}

	quantity := inv.Quantity
	minStock := inv.MinStock
	maxStock := inv.MaxStock
	location := inv.Location
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if req.MinStock != nil {
		minStock = *req.MinStock
	}
	if req.MaxStock != nil {
		maxStock = *req.MaxStock
	}
	if req.Location != nil {
		location = *req.Location
	}

	mov, err := inv.Overwrite(quantity, minStock, maxStock, location)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.inventoryRepo.Save(ctx, inv, mov); err != nil {
		c.logger.Error("erro ao salvar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryResponse(inv))
}

// Adjust define a quantidade final absoluta do estoque de um produto
// @Summary Ajustar estoque
// @Description Define a quantidade final; alvo negativo é rejeitado sem mutação
// @Tags inventory
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id path string true "ID do produto"
// @Param adjust body dto.InventoryAdjustRequest true "Quantidade final e motivo"
// @Success 200 {object} dto.InventoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /inventory/adjust/{product_id} [post]
func (c *InventoryController) Adjust(ctx *gin.Context) {
	var req dto.InventoryAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := c.inventoryRepo.FindByProduct(ctx, ctx.Param("product_id"))
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "registro de estoque não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar estoque do produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar estoque", err.Error()))
		return
	}

	mov, err := inv.AdjustTo(req.Quantity, req.Reason)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ajuste inválido", err.Error()))
		return
	}

	if err := c.inventoryRepo.Save(ctx, inv, mov); err != nil {
		c.logger.Error("erro ao salvar ajuste de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar ajuste", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryResponse(inv))
}

// ListMovements lista os movimentos de estoque de um produto
// @Summary Listar movimentos
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product_id path string true "ID do produto"
// @Param skip query int false "Registros a pular"
// @Param limit query int false "Tamanho da página"
// @Success 200 {array} dto.MovementResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/movements/{product_id} [get]
func (c *InventoryController) ListMovements(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	pagination := dto.GetPagination(skip, limit)

	movements, err := c.inventoryRepo.ListMovements(ctx, ctx.Param("product_id"), pagination.Skip, pagination.Limit)
	if err != nil {
		c.logger.Error("erro ao listar movimentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementResponseList(movements))
}

// ListLowStock lista os itens em estoque baixo
// @Summary Listar estoque baixo
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} inventory.LowStockItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/low-stock [get]
func (c *InventoryController) ListLowStock(ctx *gin.Context) {
	items, err := c.inventoryRepo.ListLowStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar estoque baixo", err.Error()))
		return
	}
	if items == nil {
		items = []*inventorydomain.LowStockItem{}
	}

	ctx.JSON(http.StatusOK, items)
}

// Summary agrega os números gerais do estoque
// @Summary Resumo do estoque
// @Tags inventory
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} inventory.Summary
// @Failure 500 {object} dto.ErrorResponse
// @Router /inventory/summary [get]
func (c *InventoryController) Summary(ctx *gin.Context) {
	summary, err := c.inventoryRepo.Summarize(ctx)
	if err != nil {
		c.logger.Error("erro ao resumir estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao resumir estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
