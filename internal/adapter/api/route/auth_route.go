package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-backoffice/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		// Login não requer autenticação
		auth.POST("/login", authController.Login)
	}
}

// RegisterSetupRoutes registra a rota de bootstrap do primeiro admin
func RegisterSetupRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	setup := r.Group("/setup")
	{
		setup.POST("/admin", authController.SetupAdmin)
	}
}
