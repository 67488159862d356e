package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	customerdomain "github.com/sistemapdv/sistema-pdv/internal/domain/customer"
	receivabledomain "github.com/sistemapdv/sistema-pdv/internal/domain/receivable"
	saledomain "github.com/sistemapdv/sistema-pdv/internal/domain/sale"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo   customerdomain.Repository
	saleRepo       saledomain.Repository
	receivableRepo receivabledomain.Repository
	logger         logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, saleRepo saledomain.Repository, receivableRepo receivabledomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo:   customerRepo,
		saleRepo:       saleRepo,
		receivableRepo: receivableRepo,
		logger:         logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param cliente body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} customer.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cust, err := customerdomain.NewCustomer(req.Name, req.Email, req.Phone, req.CPF)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}
	cust.BirthDate = req.BirthDate
	cust.Address = req.Address
	cust.City = req.City
	cust.State = req.State
	cust.ZipCode = req.ZipCode
	cust.CreditLimit = req.CreditLimit
	cust.Notes = req.Notes

	if err := c.customerRepo.Create(ctx, cust); err != nil {
		if errors.Is(err, repository.ErrCustomerDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "cliente já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, cust)
}

// List lista os clientes ativos
// @Summary Listar clientes
// @Tags clientes
// @Produce json
// @Param busca query string false "Busca por nome, email ou CPF"
// @Success 200 {array} customer.Customer
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [get]
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.customerRepo.List(ctx, ctx.Query("busca"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, customers)
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Tags clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	cust, err := c.customerRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, cust)
}

// History retorna o histórico de compras do cliente
// @Summary Histórico do cliente
// @Tags clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {array} sale.Sale
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id}/historico [get]
func (c *CustomerController) History(ctx *gin.Context) {
	sales, err := c.saleRepo.List(ctx, saledomain.Filter{CustomerID: ctx.Param("id")})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar histórico do cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// Situation retorna as contas a receber em aberto do cliente
// @Summary Situação financeira do cliente
// @Tags clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {array} receivable.Receivable
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id}/situacao [get]
func (c *CustomerController) Situation(ctx *gin.Context) {
	receivables, err := c.receivableRepo.List(ctx, receivabledomain.Filter{CustomerID: ctx.Param("id")})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar situação do cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, receivables)
}
