package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterFinancialRoutes registra as rotas do módulo financeiro
func RegisterFinancialRoutes(r *gin.RouterGroup, financialController *controller.FinancialController) {
	payables := r.Group("/contas-pagar")
	{
		payables.POST("", financialController.CreatePayable)
		payables.GET("", financialController.ListPayables)
		payables.POST("/:id/pagar", financialController.PayPayable)
	}

	receivables := r.Group("/contas-receber")
	{
		receivables.POST("", financialController.CreateReceivable)
		receivables.GET("", financialController.ListReceivables)
		receivables.POST("/:id/receber", financialController.ReceiveReceivable)
	}

	expenses := r.Group("/despesas")
	{
		expenses.POST("", financialController.CreateExpense)
		expenses.GET("", financialController.ListExpenses)
	}

	accounts := r.Group("/contas")
	{
		accounts.POST("", financialController.CreateAccount)
		accounts.GET("", financialController.ListAccounts)
	}

	checks := r.Group("/cheques")
	{
		checks.POST("", financialController.CreateCheck)
		checks.GET("", financialController.ListChecks)
		checks.PATCH("/:id/status", financialController.UpdateCheckStatus)
	}
}
