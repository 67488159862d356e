package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	reportdomain "github.com/sistemapdv/sistema-pdv/internal/domain/report"
	"github.com/sistemapdv/sistema-pdv/internal/service"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// ReportController gerencia as consultas de relatório e as verificações de
// consistência
type ReportController struct {
	reportRepo       reportdomain.Repository
	reconcileService *service.ReconcileService
	logger           logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepo reportdomain.Repository, reconcileService *service.ReconcileService, logger logger.Logger) *ReportController {
	return &ReportController{
		reportRepo:       reportRepo,
		reconcileService: reconcileService,
		logger:           logger,
	}
}

// period resolve o período da query: data_inicio/data_fim explícitos ou a
// tag periodo (hoje, mes, ano)
func period(ctx *gin.Context) reportdomain.Period {
	var start, end *time.Time
	if v := ctx.Query("data_inicio"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			start = &t
		}
	}
	if v := ctx.Query("data_fim"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end = &t
		}
	}
	if start != nil && end != nil {
		return reportdomain.Period{Start: *start, End: *end}
	}
	return reportdomain.PeriodFromTag(ctx.Query("periodo"), time.Now())
}

// CashFlow retorna o extrato de caixa
// @Summary Fluxo de caixa
// @Tags relatorios
// @Produce json
// @Param conta_id query string false "Filtrar por conta"
// @Param data_inicio query string false "Data inicial (AAAA-MM-DD)"
// @Param data_fim query string false "Data final (AAAA-MM-DD)"
// @Success 200 {object} report.CashFlow
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/fluxo-caixa [get]
func (c *ReportController) CashFlow(ctx *gin.Context) {
	f := reportdomain.CashFlowFilter{AccountID: ctx.Query("conta_id")}
	if v := ctx.Query("data_inicio"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.Start = &t
		}
	}
	if v := ctx.Query("data_fim"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.End = &t
		}
	}

	flow, err := c.reportRepo.CashFlow(ctx, f)
	if err != nil {
		c.logger.Error("erro ao consultar fluxo de caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar fluxo de caixa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, flow)
}

// DRE retorna o demonstrativo de resultado do período
// @Summary DRE
// @Tags relatorios
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {object} report.DRE
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/dre [get]
func (c *ReportController) DRE(ctx *gin.Context) {
	dre, err := c.reportRepo.DRE(ctx, period(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar DRE", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dre)
}

// Sales retorna o relatório consolidado de vendas
// @Summary Relatório de vendas
// @Tags relatorios
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {object} report.SalesReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/vendas [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	rep, err := c.reportRepo.Sales(ctx, period(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório de vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// SalesBySalesperson agrega vendas por vendedor
// @Summary Vendas por vendedor
// @Tags relatorios
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {array} report.SalesBySalesperson
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/vendas-por-vendedor [get]
func (c *ReportController) SalesBySalesperson(ctx *gin.Context) {
	rep, err := c.reportRepo.SalesBySalesperson(ctx, period(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// SalesByProduct agrega vendas por produto
// @Summary Vendas por produto
// @Tags relatorios
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {array} report.SalesByProduct
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/vendas-por-produto [get]
func (c *ReportController) SalesByProduct(ctx *gin.Context) {
	rep, err := c.reportRepo.SalesByProduct(ctx, period(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// SalesByCategory agrega vendas por categoria
// @Summary Vendas por categoria
// @Tags relatorios
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {array} report.SalesByCategory
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/vendas-por-categoria [get]
func (c *ReportController) SalesByCategory(ctx *gin.Context) {
	rep, err := c.reportRepo.SalesByCategory(ctx, period(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// ProfitMargins compara margens cadastradas e realizadas
// @Summary Margens de lucro
// @Tags relatorios
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {array} report.ProfitMargin
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/margens [get]
func (c *ReportController) ProfitMargins(ctx *gin.Context) {
	rep, err := c.reportRepo.ProfitMargins(ctx, period(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// DailySales resume as vendas por dia
// @Summary Vendas diárias
// @Tags relatorios
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {array} report.DailySales
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/vendas-diarias [get]
func (c *ReportController) DailySales(ctx *gin.Context) {
	rep, err := c.reportRepo.DailySales(ctx, period(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// Stock retorna a posição de estoque
// @Summary Relatório de estoque
// @Tags relatorios
// @Produce json
// @Param categoria_id query string false "Filtrar por categoria"
// @Success 200 {array} report.StockItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/estoque [get]
func (c *ReportController) Stock(ctx *gin.Context) {
	rep, err := c.reportRepo.Stock(ctx, ctx.Query("categoria_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// Inventory retorna o inventário com resumo financeiro
// @Summary Inventário
// @Tags relatorios
// @Produce json
// @Param categoria_id query string false "Filtrar por categoria"
// @Success 200 {object} report.Inventory
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/inventario [get]
func (c *ReportController) Inventory(ctx *gin.Context) {
	rep, err := c.reportRepo.Inventory(ctx, ctx.Query("categoria_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar inventário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// ExpiringProducts lista produtos vencidos ou próximos do vencimento
// @Summary Relatório de validade
// @Tags relatorios
// @Produce json
// @Param dias query int false "Janela em dias (padrão 30)"
// @Success 200 {array} report.ExpiringProduct
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/validade [get]
func (c *ReportController) ExpiringProducts(ctx *gin.Context) {
	days := 0
	if v := ctx.Query("dias"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}

	rep, err := c.reportRepo.ExpiringProducts(ctx, days)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar validades", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// DelinquentCustomers lista clientes com contas vencidas
// @Summary Clientes inadimplentes
// @Tags relatorios
// @Produce json
// @Success 200 {array} report.DelinquentCustomer
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/inadimplentes [get]
func (c *ReportController) DelinquentCustomers(ctx *gin.Context) {
	rep, err := c.reportRepo.DelinquentCustomers(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar inadimplentes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, rep)
}

// VerifyStock confere o estoque em cache contra as movimentações
// @Summary Conferir estoque
// @Description Lista os produtos cujo estoque em cache divergiu do trilho de
// @Description movimentações
// @Tags relatorios
// @Produce json
// @Success 200 {array} stock.Drift
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/conferencia/estoque [get]
func (c *ReportController) VerifyStock(ctx *gin.Context) {
	drifts, err := c.reconcileService.VerifyStock(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao conferir estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, drifts)
}

// VerifyBalances confere os saldos em cache contra as movimentações
// @Summary Conferir saldos
// @Description Lista as contas cujo saldo em cache divergiu das movimentações
// @Tags relatorios
// @Produce json
// @Success 200 {array} account.Drift
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/conferencia/saldos [get]
func (c *ReportController) VerifyBalances(ctx *gin.Context) {
	drifts, err := c.reconcileService.VerifyBalances(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao conferir saldos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, drifts)
}
