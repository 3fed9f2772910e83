package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/cache"
)

// SetupRoutes is the single entry‐point that wires up the public catalog,
// Auth, User, Pyme and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cc *cache.Cache) {
	// 1️⃣ Public catalog + auth routes (no middleware)
	SetupCatalogoRoutes(r, db, cc)
	SetupAuthRoutes(r, db)

	// 2️⃣ User routes (JWT‐protected): perfil + cotizaciones
	SetupUserRoutes(r, db)

	// 3️⃣ Pyme routes (JWT‐protected)
	SetupPymeRoutes(r, db)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db, cc)
}
