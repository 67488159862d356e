package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	categorydomain "github.com/sistemapdv/sistema-pdv/internal/domain/category"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// CategoryController gerencia as requisições relacionadas a categorias
type CategoryController struct {
	categoryRepo categorydomain.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo categorydomain.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria
// @Summary Criar categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Param categoria body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} category.Category
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categorias [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cat, err := categorydomain.NewCategory(req.Name, req.Description, req.Color)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, cat); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, cat)
}

// List lista as categorias ativas
// @Summary Listar categorias
// @Tags categorias
// @Produce json
// @Success 200 {array} category.Category
// @Failure 500 {object} dto.ErrorResponse
// @Router /categorias [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// Get retorna uma categoria pelo ID
// @Summary Buscar categoria
// @Tags categorias
// @Produce json
// @Param id path string true "ID da categoria"
// @Success 200 {object} category.Category
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categorias/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	cat, err := c.categoryRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, cat)
}
