package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterCategoryRoutes registra as rotas do módulo de categorias
func RegisterCategoryRoutes(r *gin.RouterGroup, categoryController *controller.CategoryController) {
	categories := r.Group("/categorias")
	{
		categories.POST("", categoryController.Create)
		categories.GET("", categoryController.List)
		categories.GET("/:id", categoryController.Get)
	}
}
