package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/models"
)

// GET /admin/pymes/pendientes
func ListPendingPymes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pendientes []models.Pyme
		if err := db.Preload("Supermercado").
			Where("approved = ?", false).
			Order("fecha_creacion ASC").
			Find(&pendientes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las pymes"})
			return
		}
		c.JSON(http.StatusOK, pendientes)
	}
}

// POST /admin/pymes/:id/aprobar
func AprobarPyme(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pyme, ok := pymePorParam(db, c)
		if !ok {
			return
		}

		if err := db.Model(pyme).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo aprobar la pyme"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Pyme aprobada"})
	}
}

// POST /admin/pymes/:id/rechazar
// Elimina la pyme y su supermercado junto con los productos que hubiera
// enviado.
func RechazarPyme(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pyme, ok := pymePorParam(db, c)
		if !ok {
			return
		}

		if pyme.SupermercadoID != 0 {
			if err := db.Where("supermercado_id = ?", pyme.SupermercadoID).Delete(&models.Producto{}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo rechazar la pyme"})
				return
			}
			if err := db.Delete(&models.Supermercado{}, pyme.SupermercadoID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo rechazar la pyme"})
				return
			}
		}
		if err := db.Delete(pyme).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo rechazar la pyme"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Pyme rechazada"})
	}
}

func pymePorParam(db *gorm.DB, c *gin.Context) (*models.Pyme, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de pyme inválido"})
		return nil, false
	}

	var pyme models.Pyme
	if err := db.First(&pyme, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pyme no encontrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		}
		return nil, false
	}
	return &pyme, true
}
