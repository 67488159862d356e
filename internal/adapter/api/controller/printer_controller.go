package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	reportdomain "github.com/sistemapdv/sistema-pdv/internal/domain/report"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
	"github.com/sistemapdv/sistema-pdv/pkg/printer"
)

// PrinterController gerencia o estado da impressora e a impressão de relatórios
type PrinterController struct {
	printer    *printer.Printer
	reportRepo reportdomain.Repository
	logger     logger.Logger
}

// NewPrinterController cria uma nova instância de PrinterController
func NewPrinterController(p *printer.Printer, reportRepo reportdomain.Repository, logger logger.Logger) *PrinterController {
	return &PrinterController{
		printer:    p,
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Status informa o estado da impressora
// @Summary Status da impressora
// @Tags impressora
// @Produce json
// @Success 200 {object} printer.Status
// @Router /impressora/status [get]
func (c *PrinterController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.printer.Status())
}

// Test envia uma impressão de teste
// @Summary Teste de impressão
// @Tags impressora
// @Produce json
// @Success 200 {object} printer.Result
// @Router /impressora/teste [post]
func (c *PrinterController) Test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.printer.Test())
}

// PrintSalesReport imprime o relatório de vendas do período
// @Summary Imprimir relatório de vendas
// @Tags impressora
// @Produce json
// @Param periodo query string false "hoje, mes ou ano"
// @Success 200 {object} printer.Result
// @Failure 500 {object} dto.ErrorResponse
// @Router /impressora/relatorio-vendas [post]
func (c *PrinterController) PrintSalesReport(ctx *gin.Context) {
	p := reportdomain.PeriodFromTag(ctx.Query("periodo"), time.Now())

	rep, err := c.reportRepo.Sales(ctx, p)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar relatório de vendas", err.Error()))
		return
	}

	out := printer.SalesReport{
		Period:        ctx.DefaultQuery("periodo", "hoje"),
		TotalSales:    rep.Summary.TotalSales,
		TotalRevenue:  rep.Summary.TotalRevenue,
		AverageTicket: rep.Summary.AverageTicket,
	}
	for _, pm := range rep.ByPaymentMethod {
		out.ByPaymentMethod = append(out.ByPaymentMethod, printer.PaymentMethodLine{
			PaymentMethod: pm.PaymentMethod,
			Count:         pm.Count,
			Total:         pm.Total,
		})
	}
	for _, tp := range rep.TopProducts {
		out.TopProducts = append(out.TopProducts, printer.TopProductLine{
			Name:     tp.Name,
			Quantity: tp.Quantity,
			Total:    tp.Total,
		})
	}

	result, err := c.printer.PrintSalesReport(out)
	if err != nil {
		c.logger.Error("erro ao imprimir relatório", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao imprimir relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
