package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-backoffice/pkg/middleware"
)

// RegisterPaymentRoutes registra as rotas de métodos e processamento de pagamento
func RegisterPaymentRoutes(r *gin.RouterGroup, paymentController *controller.PaymentController) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("/methods", paymentController.CreateMethod)
		payments.GET("/methods", paymentController.ListMethods)
		payments.GET("/methods/:id", paymentController.GetMethod)
		payments.PUT("/methods/:id", paymentController.UpdateMethod)
		payments.DELETE("/methods/:id", paymentController.DeleteMethod)
		payments.POST("/process/:sale_id", paymentController.Process)
		payments.GET("/transactions", paymentController.ListTransactions)
		payments.GET("/summary", paymentController.Summary)
	}
}
