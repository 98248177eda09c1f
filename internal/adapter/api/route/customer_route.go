package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-backoffice/pkg/middleware"
)

// RegisterCustomerRoutes registra as rotas do cadastro de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	customers.Use(middleware.AuthMiddleware())
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/:id", customerController.Get)
		customers.PUT("/:id", customerController.Update)
		customers.DELETE("/:id", customerController.Delete)
		customers.GET("/document/:document", customerController.GetByDocument)
		customers.GET("/email/:email", customerController.GetByEmail)
	}
}
