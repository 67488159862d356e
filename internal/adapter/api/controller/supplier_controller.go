package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	supplierdomain "github.com/sistemapdv/sistema-pdv/internal/domain/supplier"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param fornecedor body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} supplier.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := supplierdomain.NewSupplier(req.Name, req.LegalName, req.CNPJ)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}
	s.Email = req.Email
	s.Phone = req.Phone
	s.Address = req.Address
	s.City = req.City
	s.State = req.State
	s.ZipCode = req.ZipCode
	s.Contact = req.Contact
	s.Notes = req.Notes

	if err := c.supplierRepo.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrSupplierDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "fornecedor já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// List lista os fornecedores ativos
// @Summary Listar fornecedores
// @Tags fornecedores
// @Produce json
// @Param busca query string false "Busca por nome, razão social ou CNPJ"
// @Success 200 {array} supplier.Supplier
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores [get]
func (c *SupplierController) List(ctx *gin.Context) {
	suppliers, err := c.supplierRepo.List(ctx, ctx.Query("busca"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, suppliers)
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Tags fornecedores
// @Produce json
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} supplier.Supplier
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	s, err := c.supplierRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}
