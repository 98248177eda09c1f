package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-backoffice/pkg/middleware"
)

// RegisterReportRoutes registra as rotas de relatórios gerenciais
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/sales", reportController.Sales)
		reports.GET("/products/top-selling", reportController.TopProducts)
		reports.GET("/inventory/low-stock", reportController.LowStock)
		reports.GET("/financial/daily", reportController.FinancialDaily)
		reports.GET("/customers/top", reportController.TopCustomers)
		reports.GET("/dashboard/summary", reportController.Dashboard)
	}
}
