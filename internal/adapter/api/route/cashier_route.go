package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterCashierRoutes registra as rotas do módulo de caixa
func RegisterCashierRoutes(r *gin.RouterGroup, cashierController *controller.CashierController) {
	cashier := r.Group("/caixa")
	{
		cashier.POST("/abrir", cashierController.Open)
		cashier.POST("/sangria", cashierController.Withdraw)
		cashier.POST("/suprimento", cashierController.Supply)
		cashier.POST("/fechar", cashierController.Close)
	}
}
