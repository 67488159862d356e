package route

import (
	"github.com/gin-gonic/gin"

	"github.com/sistemapdv/sistema-pdv/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/produtos")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/estoque-baixo", productController.LowStock)
		products.GET("/codigo/:codigo", productController.GetByBarcode)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
		products.POST("/:id/estoque", productController.AdjustStock)
		products.GET("/:id/movimentacoes", productController.Movements)
	}
}
