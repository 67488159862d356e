package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterSettingsRoutes registra as rotas do módulo de configurações
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController) {
	settings := r.Group("/configuracoes")
	{
		settings.GET("", settingsController.List)
		settings.POST("/reset", settingsController.Reset)
		settings.GET("/:chave", settingsController.Get)
		settings.PUT("/:chave", settingsController.Save)
	}
}
