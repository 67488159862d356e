package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterReportRoutes registra as rotas do módulo de relatórios
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/relatorios")
	{
		reports.GET("/fluxo-caixa", reportController.CashFlow)
		reports.GET("/dre", reportController.DRE)
		reports.GET("/vendas", reportController.Sales)
		reports.GET("/vendas-por-vendedor", reportController.SalesBySalesperson)
		reports.GET("/vendas-por-produto", reportController.SalesByProduct)
		reports.GET("/vendas-por-categoria", reportController.SalesByCategory)
		reports.GET("/margens", reportController.ProfitMargins)
		reports.GET("/vendas-diarias", reportController.DailySales)
		reports.GET("/estoque", reportController.Stock)
		reports.GET("/inventario", reportController.Inventory)
		reports.GET("/validade", reportController.ExpiringProducts)
		reports.GET("/inadimplentes", reportController.DelinquentCustomers)
		reports.GET("/conferencia/estoque", reportController.VerifyStock)
		reports.GET("/conferencia/saldos", reportController.VerifyBalances)
	}
}
