package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/cache"
	productoControllers "github.com/tucanasta/comparador-api/controllers/producto"
)

// SetupCatalogoRoutes registers the public read‐only catalog endpoints.
func SetupCatalogoRoutes(r *gin.Engine, db *gorm.DB, cc *cache.Cache) {
	r.GET("/comparador", productoControllers.Comparador(db, cc))
	r.GET("/tipos", productoControllers.GetTipos(db, cc))
	r.GET("/supermercados", productoControllers.GetSupermercados(db))

	productosGroup := r.Group("/productos")
	{
		productosGroup.GET("", productoControllers.GetProductos(db))
		productosGroup.GET("/:id", productoControllers.GetProductoByID(db))
	}
}
