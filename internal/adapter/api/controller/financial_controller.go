package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	accountdomain "github.com/sistemapdv/sistema-pdv/internal/domain/account"
	checkdomain "github.com/sistemapdv/sistema-pdv/internal/domain/check"
	expensedomain "github.com/sistemapdv/sistema-pdv/internal/domain/expense"
	payabledomain "github.com/sistemapdv/sistema-pdv/internal/domain/payable"
	receivabledomain "github.com/sistemapdv/sistema-pdv/internal/domain/receivable"
	"github.com/sistemapdv/sistema-pdv/internal/service"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// FinancialController gerencia contas a pagar, contas a receber, despesas,
// contas bancárias e cheques
type FinancialController struct {
	payableRepo       payabledomain.Repository
	receivableRepo    receivabledomain.Repository
	expenseRepo       expensedomain.Repository
	accountRepo       accountdomain.Repository
	checkRepo         checkdomain.Repository
	settlementService *service.SettlementService
	logger            logger.Logger
}

// NewFinancialController cria uma nova instância de FinancialController
func NewFinancialController(
	payableRepo payabledomain.Repository,
	receivableRepo receivabledomain.Repository,
	expenseRepo expensedomain.Repository,
	accountRepo accountdomain.Repository,
	checkRepo checkdomain.Repository,
	settlementService *service.SettlementService,
	logger logger.Logger,
) *FinancialController {
	return &FinancialController{
		payableRepo:       payableRepo,
		receivableRepo:    receivableRepo,
		expenseRepo:       expenseRepo,
		accountRepo:       accountRepo,
		checkRepo:         checkRepo,
		settlementService: settlementService,
		logger:            logger,
	}
}

// CreatePayable cria uma conta a pagar
// @Summary Criar conta a pagar
// @Tags financeiro
// @Accept json
// @Produce json
// @Param conta body dto.PayableRequest true "Dados da conta a pagar"
// @Success 201 {object} payable.Payable
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas-pagar [post]
func (c *FinancialController) CreatePayable(ctx *gin.Context) {
	var req dto.PayableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := payabledomain.NewPayable(req.SupplierID, req.Description, req.Category, req.Amount, req.DueDate, req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar conta a pagar", err.Error()))
		return
	}
	p.Document = req.Document
	p.Notes = req.Notes

	if err := c.payableRepo.Create(ctx, p); err != nil {
		c.logger.Error("erro ao criar conta a pagar", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar conta a pagar", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// ListPayables lista contas a pagar
// @Summary Listar contas a pagar
// @Tags financeiro
// @Produce json
// @Param status query string false "pendente, parcial, pago, cancelado ou vencida"
// @Success 200 {array} payable.Payable
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas-pagar [get]
func (c *FinancialController) ListPayables(ctx *gin.Context) {
	f := payabledomain.Filter{Status: ctx.Query("status")}
	if v := ctx.Query("data_inicio"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.StartDate = &t
		}
	}
	if v := ctx.Query("data_fim"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.EndDate = &t
		}
	}

	payables, err := c.payableRepo.List(ctx, f)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar contas a pagar", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, payables)
}

// PayPayable liquida uma conta a pagar
// @Summary Pagar conta
// @Description Aplica um pagamento parcial ou total e lança a saída no caixa
// @Description na mesma transação
// @Tags financeiro
// @Accept json
// @Produce json
// @Param id path string true "ID da conta a pagar"
// @Param pagamento body dto.SettlementRequest true "Dados do pagamento"
// @Success 200 {object} payable.Payable
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas-pagar/{id}/pagar [post]
func (c *FinancialController) PayPayable(ctx *gin.Context) {
	var req dto.SettlementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.settlementService.PayPayable(ctx, ctx.Param("id"), service.SettlementInput{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		BankAccountID: req.BankAccountID,
		UserID:        req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPayableNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conta a pagar não encontrada", ""))
		case errors.Is(err, payabledomain.ErrAlreadyPaid):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		case errors.Is(err, service.ErrValorInvalido):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.logger.Error("erro ao pagar conta", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao pagar conta", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// CreateReceivable cria uma conta a receber
// @Summary Criar conta a receber
// @Tags financeiro
// @Accept json
// @Produce json
// @Param conta body dto.ReceivableRequest true "Dados da conta a receber"
// @Success 201 {object} receivable.Receivable
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas-receber [post]
func (c *FinancialController) CreateReceivable(ctx *gin.Context) {
	var req dto.ReceivableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	rec, err := receivabledomain.NewReceivable(req.CustomerID, req.SaleID, req.Description, req.Amount, req.DueDate, req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar conta a receber", err.Error()))
		return
	}
	rec.Document = req.Document
	rec.Notes = req.Notes

	if err := c.receivableRepo.Create(ctx, rec); err != nil {
		c.logger.Error("erro ao criar conta a receber", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar conta a receber", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, rec)
}

// ListReceivables lista contas a receber
// @Summary Listar contas a receber
// @Tags financeiro
// @Produce json
// @Param status query string false "pendente, parcial, recebido, cancelado ou vencida"
// @Param cliente_id query string false "Filtrar por cliente"
// @Success 200 {array} receivable.Receivable
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas-receber [get]
func (c *FinancialController) ListReceivables(ctx *gin.Context) {
	f := receivabledomain.Filter{
		Status:     ctx.Query("status"),
		CustomerID: ctx.Query("cliente_id"),
	}
	if v := ctx.Query("data_inicio"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.StartDate = &t
		}
	}
	if v := ctx.Query("data_fim"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.EndDate = &t
		}
	}

	receivables, err := c.receivableRepo.List(ctx, f)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar contas a receber", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, receivables)
}

// ReceiveReceivable liquida uma conta a receber
// @Summary Receber conta
// @Description Aplica um recebimento parcial ou total e lança a entrada no
// @Description caixa na mesma transação
// @Tags financeiro
// @Accept json
// @Produce json
// @Param id path string true "ID da conta a receber"
// @Param recebimento body dto.SettlementRequest true "Dados do recebimento"
// @Success 200 {object} receivable.Receivable
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas-receber/{id}/receber [post]
func (c *FinancialController) ReceiveReceivable(ctx *gin.Context) {
	var req dto.SettlementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	rec, err := c.settlementService.ReceiveReceivable(ctx, ctx.Param("id"), service.SettlementInput{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		BankAccountID: req.BankAccountID,
		UserID:        req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReceivableNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "conta a receber não encontrada", ""))
		case errors.Is(err, receivabledomain.ErrAlreadyReceived):
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, err.Error(), ""))
		case errors.Is(err, service.ErrValorInvalido):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			c.logger.Error("erro ao receber conta", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao receber conta", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, rec)
}

// CreateExpense registra uma despesa
// @Summary Registrar despesa
// @Tags financeiro
// @Accept json
// @Produce json
// @Param despesa body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} expense.Expense
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /despesas [post]
func (c *FinancialController) CreateExpense(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e, err := expensedomain.NewExpense(req.Description, req.Category, req.Amount, req.Date, req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar despesa", err.Error()))
		return
	}
	e.BankAccountID = req.BankAccountID
	e.Notes = req.Notes

	if err := c.expenseRepo.Create(ctx, e); err != nil {
		c.logger.Error("erro ao registrar despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, e)
}

// ListExpenses lista despesas do período
// @Summary Listar despesas
// @Tags financeiro
// @Produce json
// @Param data_inicio query string false "Data inicial (RFC3339)"
// @Param data_fim query string false "Data final (RFC3339)"
// @Success 200 {array} expense.Expense
// @Failure 500 {object} dto.ErrorResponse
// @Router /despesas [get]
func (c *FinancialController) ListExpenses(ctx *gin.Context) {
	var start, end *time.Time
	if v := ctx.Query("data_inicio"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			start = &t
		}
	}
	if v := ctx.Query("data_fim"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			end = &t
		}
	}

	expenses, err := c.expenseRepo.List(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, expenses)
}

// CreateAccount cria uma conta bancária
// @Summary Criar conta bancária
// @Tags financeiro
// @Accept json
// @Produce json
// @Param conta body dto.AccountRequest true "Dados da conta"
// @Success 201 {object} account.Account
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas [post]
func (c *FinancialController) CreateAccount(ctx *gin.Context) {
	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	accType := accountdomain.AccountType(req.Type)
	if accType == "" {
		accType = accountdomain.TypeCashDrawer
	}

	a, err := accountdomain.NewAccount(req.Name, accType, req.OpeningBalance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar conta", err.Error()))
		return
	}
	a.Bank = req.Bank
	a.Agency = req.Agency
	a.Number = req.Number

	if err := c.accountRepo.Create(ctx, a); err != nil {
		c.logger.Error("erro ao criar conta", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar conta", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, a)
}

// ListAccounts lista as contas ativas com saldo
// @Summary Listar contas bancárias
// @Tags financeiro
// @Produce json
// @Success 200 {array} account.Account
// @Failure 500 {object} dto.ErrorResponse
// @Router /contas [get]
func (c *FinancialController) ListAccounts(ctx *gin.Context) {
	accounts, err := c.accountRepo.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar contas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, accounts)
}

// CreateCheck registra um cheque
// @Summary Registrar cheque
// @Tags financeiro
// @Accept json
// @Produce json
// @Param cheque body dto.CheckRequest true "Dados do cheque"
// @Success 201 {object} check.Check
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cheques [post]
func (c *FinancialController) CreateCheck(ctx *gin.Context) {
	var req dto.CheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	ch, err := checkdomain.NewCheck(checkdomain.CheckType(req.Type), req.Number, req.Bank, req.Issuer, req.Amount, req.GoodFor)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar cheque", err.Error()))
		return
	}
	ch.CustomerID = req.CustomerID
	ch.SupplierID = req.SupplierID
	ch.Notes = req.Notes

	if err := c.checkRepo.Create(ctx, ch); err != nil {
		c.logger.Error("erro ao registrar cheque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cheque", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, ch)
}

// ListChecks lista cheques
// @Summary Listar cheques
// @Tags financeiro
// @Produce json
// @Param status query string false "pendente, compensado, devolvido ou repassado"
// @Success 200 {array} check.Check
// @Failure 500 {object} dto.ErrorResponse
// @Router /cheques [get]
func (c *FinancialController) ListChecks(ctx *gin.Context) {
	checks, err := c.checkRepo.List(ctx, ctx.Query("status"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar cheques", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, checks)
}

// UpdateCheckStatus atualiza o status de um cheque
// @Summary Atualizar status do cheque
// @Tags financeiro
// @Accept json
// @Produce json
// @Param id path string true "ID do cheque"
// @Param status body dto.CheckStatusRequest true "Novo status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cheques/{id}/status [patch]
func (c *FinancialController) UpdateCheckStatus(ctx *gin.Context) {
	var req dto.CheckStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.checkRepo.UpdateStatus(ctx, ctx.Param("id"), req.Status); err != nil {
		if errors.Is(err, repository.ErrCheckNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cheque não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cheque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status atualizado", nil))
}
