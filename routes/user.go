package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cotizacionControllers "github.com/tucanasta/comparador-api/controllers/cotizacion"
	usuarioControllers "github.com/tucanasta/comparador-api/controllers/usuario"
	"github.com/tucanasta/comparador-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Perfil ────────────────
		userGroup.GET("/", usuarioControllers.GetUsuario(db))              // GET /user/
		userGroup.PUT("/", usuarioControllers.UpdateUsuario(db))           // PUT /user/
		userGroup.PUT("/password", usuarioControllers.CambiarPassword(db)) // PUT /user/password

		// ──────────────── Cotización abierta (carrito) ────────────────
		cotGroup := userGroup.Group("/cotizacion")
		{
			cotGroup.GET("", cotizacionControllers.VerCotizacion(db))                            // GET /user/cotizacion
			cotGroup.POST("/agregar", cotizacionControllers.AgregarItemHandler(db))              // POST /user/cotizacion/agregar
			cotGroup.POST("/agregar/:producto_id", cotizacionControllers.AgregarItemHandler(db)) // POST /user/cotizacion/agregar/:producto_id
			cotGroup.POST("/actualizar", cotizacionControllers.ActualizarItemHandler(db))        // POST /user/cotizacion/actualizar
			cotGroup.POST("/item/eliminar", cotizacionControllers.EliminarItemHandler(db))       // POST /user/cotizacion/item/eliminar
			cotGroup.POST("/guardar", cotizacionControllers.GuardarCotizacion(db))               // POST /user/cotizacion/guardar
			cotGroup.POST("/reabrir", cotizacionControllers.ReabrirCotizacion(db))               // POST /user/cotizacion/reabrir
			cotGroup.POST("/eliminar", cotizacionControllers.EliminarCotizacion(db))             // POST /user/cotizacion/eliminar
		}

		// ──────────────── Historial ────────────────
		userGroup.GET("/cotizaciones", cotizacionControllers.MisCotizaciones(db)) // GET /user/cotizaciones
	}
}
