package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	saledomain "github.com/sistemapdv/sistema-pdv/internal/domain/sale"
	"github.com/sistemapdv/sistema-pdv/internal/service"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleService *service.SaleService
	logger      logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleService *service.SaleService, logger logger.Logger) *SaleController {
	return &SaleController{
		saleService: saleService,
		logger:      logger,
	}
}

// Create fecha uma venda
// @Summary Fechar venda
// @Description Fecha a venda do carrinho: gera o número do dia, grava venda e
// @Description itens, baixa o estoque e lança o valor no caixa em uma única
// @Description transação
// @Tags vendas
// @Accept json
// @Produce json
// @Param venda body dto.SaleRequest true "Carrinho"
// @Success 201 {object} service.CreateSaleResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	input := service.CreateSaleInput{
		CustomerID:    req.CustomerID,
		UserID:        req.UserID,
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	result, err := c.saleService.CreateSale(ctx, input)
	if err != nil {
		if errors.Is(err, saledomain.ErrEmptyUser) || errors.Is(err, saledomain.ErrEmptyItems) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "venda inválida", err.Error()))
			return
		}
		c.logger.Error("erro ao fechar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao fechar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// Get retorna uma venda com seus itens
// @Summary Buscar venda
// @Tags vendas
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} sale.Sale
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.saleService.GetSale(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// List lista as vendas
// @Summary Listar vendas
// @Tags vendas
// @Produce json
// @Param data_inicio query string false "Data inicial (RFC3339)"
// @Param data_fim query string false "Data final (RFC3339)"
// @Param cliente_id query string false "Filtrar por cliente"
// @Param usuario_id query string false "Filtrar por vendedor"
// @Success 200 {array} sale.Sale
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas [get]
func (c *SaleController) List(ctx *gin.Context) {
	f := saledomain.Filter{
		CustomerID: ctx.Query("cliente_id"),
		UserID:     ctx.Query("usuario_id"),
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

	sales, err := c.saleService.ListSales(ctx, f)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// PrintReceipt reimprime o recibo de uma venda
// @Summary Imprimir recibo
// @Tags vendas
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} printer.Result
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vendas/{id}/recibo [post]
func (c *SaleController) PrintReceipt(ctx *gin.Context) {
	result, err := c.saleService.PrintReceipt(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao imprimir recibo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao imprimir recibo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
