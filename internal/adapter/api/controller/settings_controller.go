package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/dto"
	"github.com/sistemapdv/sistema-pdv/internal/adapter/repository"
	settingsdomain "github.com/sistemapdv/sistema-pdv/internal/domain/settings"
	"github.com/sistemapdv/sistema-pdv/pkg/logger"
)

// SettingsController gerencia o repositório chave/valor de configurações
type SettingsController struct {
	settingsRepo settingsdomain.Repository
	logger       logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepo settingsdomain.Repository, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// List lista todas as configurações
// @Summary Listar configurações
// @Tags configuracoes
// @Produce json
// @Success 200 {array} settings.Setting
// @Failure 500 {object} dto.ErrorResponse
// @Router /configuracoes [get]
func (c *SettingsController) List(ctx *gin.Context) {
	items, err := c.settingsRepo.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// Get busca uma configuração pela chave
// @Summary Buscar configuração
// @Tags configuracoes
// @Produce json
// @Param chave path string true "Chave da configuração"
// @Success 200 {object} settings.Setting
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /configuracoes/{chave} [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	s, err := c.settingsRepo.Get(ctx, ctx.Param("chave"))
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "configuração não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// Save grava uma configuração
// @Summary Gravar configuração
// @Tags configuracoes
// @Accept json
// @Produce json
// @Param chave path string true "Chave da configuração"
// @Param configuracao body dto.SettingRequest true "Valor e metadados"
// @Success 200 {object} settings.Setting
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /configuracoes/{chave} [put]
func (c *SettingsController) Save(ctx *gin.Context) {
	var req dto.SettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	valueType := settingsdomain.ValueType(req.Type)
	if valueType == "" {
		valueType = settingsdomain.TypeString
	}

	s := &settingsdomain.Setting{
		Key:         ctx.Param("chave"),
		Value:       req.Value,
		Type:        valueType,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := c.settingsRepo.Save(ctx, s); err != nil {
		c.logger.Error("erro ao gravar configuração", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar configuração", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// Reset regrava as configurações padrão
// @Summary Restaurar configurações padrão
// @Tags configuracoes
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /configuracoes/reset [post]
func (c *SettingsController) Reset(ctx *gin.Context) {
	if err := c.settingsRepo.Reset(ctx); err != nil {
		c.logger.Error("erro ao restaurar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao restaurar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("configurações restauradas", nil))
}
