package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-backoffice/pkg/middleware"
)

// RegisterInventoryRoutes registra as rotas de controle de estoque
func RegisterInventoryRoutes(r *gin.RouterGroup, inventoryController *controller.InventoryController) {
	inventory := r.Group("/inventory")
	inventory.Use(middleware.AuthMiddleware())
	{
		inventory.POST("", inventoryController.Upsert)
		inventory.GET("", inventoryController.List)
		inventory.PUT("/:id", inventoryController.Update)
		inventory.GET("/product/:product_id", inventoryController.GetByProduct)
		inventory.POST("/adjust/:product_id", inventoryController.Adjust)
		inventory.GET("/movements/:product_id", inventoryController.ListMovements)
		inventory.GET("/low-stock", inventoryController.ListLowStock)
		inventory.GET("/summary", inventoryController.Summary)
	}
}
