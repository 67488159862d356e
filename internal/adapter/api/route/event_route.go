package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterEventRoutes registra a rota de eventos em tempo real
func RegisterEventRoutes(r *gin.RouterGroup, eventController *controller.EventController) {
	r.GET("/eventos", eventController.Stream)
}
