package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	pymeControllers "github.com/tucanasta/comparador-api/controllers/pyme"
	"github.com/tucanasta/comparador-api/middleware"
)

// SetupPymeRoutes registers all “/pyme/*” endpoints. Requires JWT middleware.
func SetupPymeRoutes(r *gin.Engine, db *gorm.DB) {
	pymeGroup := r.Group("/pyme")
	pymeGroup.Use(middleware.ValidateToken)
	{
		pymeGroup.POST("/registro", pymeControllers.Registro(db))        // POST /pyme/registro
		pymeGroup.GET("/dashboard", pymeControllers.Dashboard(db))       // GET /pyme/dashboard
		pymeGroup.POST("/productos", pymeControllers.SubmitProducto(db)) // POST /pyme/productos
	}
}
