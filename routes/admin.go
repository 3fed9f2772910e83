package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/cache"
	adminControllers "github.com/tucanasta/comparador-api/controllers/admin"
	productoControllers "github.com/tucanasta/comparador-api/controllers/producto"
	"github.com/tucanasta/comparador-api/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cc *cache.Cache) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Revisión de productos ───────────
		revisiones := adminGroup.Group("/revisiones")
		{
			revisiones.GET("", adminControllers.ListPendingProductos(db))
			revisiones.POST("/:id/aprobar", adminControllers.AprobarProducto(db, cc))
			revisiones.POST("/:id/rechazar", adminControllers.RechazarProducto(db))
			revisiones.PUT("/:id", adminControllers.EditarProducto(db, cc))
		}

		// ─────────── Aprobación de pymes ───────────
		pymesAdmin := adminGroup.Group("/pymes")
		{
			pymesAdmin.GET("/pendientes", adminControllers.ListPendingPymes(db))
			pymesAdmin.POST("/:id/aprobar", adminControllers.AprobarPyme(db))
			pymesAdmin.POST("/:id/rechazar", adminControllers.RechazarPyme(db))
		}

		// ─────────── Supermercados ───────────
		supermercadosAdmin := adminGroup.Group("/supermercados")
		{
			supermercadosAdmin.POST("", adminControllers.CreateSupermercado(db))
			supermercadosAdmin.PUT("/:id", adminControllers.UpdateSupermercado(db))
			supermercadosAdmin.DELETE("/:id", adminControllers.DeleteSupermercado(db, cc))
		}

		// ─────────── Exportación ───────────
		adminGroup.GET("/productos/export", productoControllers.ExportProductosToExcel(db))
	}
}
