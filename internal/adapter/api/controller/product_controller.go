package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	productdomain "github.com/sistemapdv/sistema-pdv/internal/domain/product"
	stockdomain "github.com/sistemapdv/sistema-pdv/internal/domain/stock"
	"github.com/sistemapdv/sistema-pdv/internal/service"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo  productdomain.Repository
	movementRepo stockdomain.Repository
	stockService *service.StockService
	logger       logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, movementRepo stockdomain.Repository, stockService *service.StockService, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		stockService: stockService,
		logger:       logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags produtos
// @Accept json
// @Produce json
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Name, req.Price, req.Cost, req.Stock, req.MinStock)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}
	p.Description = req.Description
	p.Barcode = req.Barcode
	p.Reference = req.Reference
	p.ExpiryDate = req.ExpiryDate
	p.CategoryID = req.CategoryID
	p.SupplierID = req.SupplierID
	p.Image = req.Image

	if err := c.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "produto já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// Update atualiza um produto existente
// @Summary Atualizar produto
// @Description Atualiza os dados cadastrais de um produto. O estoque não é
// @Description alterado por aqui; use o ajuste de estoque.
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Barcode = req.Barcode
	p.Reference = req.Reference
	p.Price = req.Price
	p.Cost = req.Cost
	p.MinStock = req.MinStock
	p.ExpiryDate = req.ExpiryDate
	p.CategoryID = req.CategoryID
	p.SupplierID = req.SupplierID
	p.Image = req.Image

	if err := c.productRepo.Update(ctx, p); err != nil {
		c.logger.Error("erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// Delete desativa um produto
// @Summary Remover produto
// @Description Desativa um produto (remoção lógica); o histórico de vendas permanece
// @Tags produtos
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido", nil))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Tags produtos
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// GetByBarcode retorna um produto pelo código de barras ou referência
// @Summary Buscar produto por código
// @Description Busca usada pelo leitor de código de barras do PDV
// @Tags produtos
// @Produce json
// @Param codigo path string true "Código de barras ou referência"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/codigo/{codigo} [get]
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	p, err := c.productRepo.FindByBarcode(ctx, ctx.Param("codigo"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// List lista os produtos ativos
// @Summary Listar produtos
// @Tags produtos
// @Produce json
// @Param categoria_id query string false "Filtrar por categoria"
// @Param busca query string false "Busca por nome ou descrição"
// @Param codigo query string false "Código de barras ou referência"
// @Success 200 {array} product.Product
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.productRepo.List(ctx, productdomain.Filter{
		CategoryID: ctx.Query("categoria_id"),
		Search:     ctx.Query("busca"),
		Code:       ctx.Query("codigo"),
	})
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// LowStock lista os produtos com estoque no mínimo ou abaixo
// @Summary Produtos com estoque baixo
// @Tags produtos
// @Produce json
// @Success 200 {array} product.Product
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/estoque-baixo [get]
func (c *ProductController) LowStock(ctx *gin.Context) {
	products, err := c.productRepo.ListLowStock(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// AdjustStock aplica um ajuste manual de estoque
// @Summary Ajustar estoque
// @Description Aplica um delta assinado ao estoque do produto e registra a
// @Description movimentação de auditoria na mesma transação
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path string true "ID do produto"
// @Param ajuste body dto.StockAdjustRequest true "Dados do ajuste"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id}/estoque [post]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.StockAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "Ajuste manual"
	}

	if err := c.stockService.AdjustStock(ctx, id, req.Quantity, reason, req.UserID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao ajustar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ajustar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("estoque ajustado", nil))
}

// Movements lista as movimentações de estoque de um produto
// @Summary Histórico de estoque
// @Tags produtos
// @Produce json
// @Param id path string true "ID do produto"
// @Param limite query int false "Máximo de movimentações (padrão 50)"
// @Success 200 {array} stock.Movement
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id}/movimentacoes [get]
func (c *ProductController) Movements(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limite"))

	movements, err := c.movementRepo.ListByProduct(ctx, ctx.Param("id"), limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, movements)
}
