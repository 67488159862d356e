package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/service"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// CashierController gerencia as requisições do ciclo diário do caixa
type CashierController struct {
	cashierService *service.CashierService
	logger         logger.Logger
}

// NewCashierController cria uma nova instância de CashierController
func NewCashierController(cashierService *service.CashierService, logger logger.Logger) *CashierController {
	return &CashierController{
		cashierService: cashierService,
		logger:         logger,
	}
}

// Open abre o caixa do dia
// @Summary Abrir caixa
// @Description Registra a abertura do caixa com o fundo de troco. Rejeita uma
// @Description segunda abertura para a mesma conta no mesmo dia.
// @Tags caixa
// @Accept json
// @Produce json
// @Param abertura body dto.OpenCashierRequest true "Dados da abertura"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /caixa/abrir [post]
func (c *CashierController) Open(ctx *gin.Context) {
	var req dto.OpenCashierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.cashierService.OpenCashier(ctx, req.AccountID, req.OpeningAmount, req.UserID); err != nil {
		if errors.Is(err, service.ErrCaixaJaAberto) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao abrir caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao abrir caixa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("caixa aberto", nil))
}

// Withdraw registra uma sangria
// @Summary Sangria
// @Description Retira dinheiro do caixa. Rejeita quando o saldo é insuficiente.
// @Tags caixa
// @Accept json
// @Produce json
// @Param sangria body dto.WithdrawRequest true "Dados da sangria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /caixa/sangria [post]
func (c *CashierController) Withdraw(ctx *gin.Context) {
	var req dto.WithdrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.cashierService.Withdraw(ctx, req.AccountID, req.Amount, req.Description, req.UserID); err != nil {
		if errors.Is(err, service.ErrSaldoInsuficiente) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
			return
		}
		if errors.Is(err, service.ErrValorInvalido) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao registrar sangria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar sangria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("sangria registrada", nil))
}

// Supply registra um suprimento
// @Summary Suprimento
// @Description Registra uma entrada avulsa de dinheiro no caixa
// @Tags caixa
// @Accept json
// @Produce json
// @Param suprimento body dto.WithdrawRequest true "Dados do suprimento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /caixa/suprimento [post]
func (c *CashierController) Supply(ctx *gin.Context) {
	var req dto.WithdrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.cashierService.Supply(ctx, req.AccountID, req.Amount, req.Description, req.UserID); err != nil {
		if errors.Is(err, service.ErrValorInvalido) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
			return
		}
		c.logger.Error("erro ao registrar suprimento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar suprimento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("suprimento registrado", nil))
}

// Close fecha o caixa do dia
// @Summary Fechar caixa
// @Description Totaliza o dia e registra a movimentação de fechamento. O
// @Description fechamento é informativo; não bloqueia vendas posteriores.
// @Tags caixa
// @Accept json
// @Produce json
// @Param fechamento body dto.CloseCashierRequest true "Dados do fechamento"
// @Success 200 {object} service.CloseCashierResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /caixa/fechar [post]
func (c *CashierController) Close(ctx *gin.Context) {
	var req dto.CloseCashierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	result, err := c.cashierService.CloseCashier(ctx, req.AccountID, req.UserID)
	if err != nil {
		c.logger.Error("erro ao fechar caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao fechar caixa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
