package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterPrinterRoutes registra as rotas do módulo de impressão
func RegisterPrinterRoutes(r *gin.RouterGroup, printerController *controller.PrinterController) {
	printers := r.Group("/impressora")
	{
		printers.GET("/status", printerController.Status)
		printers.POST("/teste", printerController.Test)
		printers.POST("/relatorio-vendas", printerController.PrintSalesReport)
	}
}
