package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/cache"
	"github.com/tucanasta/comparador-api/models"
)

type SupermercadoInput struct {
	Nombre       string `json:"nombre" binding:"required"`
	URLPrincipal string `json:"url_principal"`
}

// POST /admin/supermercados
func CreateSupermercado(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SupermercadoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		supermercado := models.Supermercado{
			Nombre:       input.Nombre,
			URLPrincipal: input.URLPrincipal,
		}
		if err := db.Create(&supermercado).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe un supermercado con ese nombre"})
			return
		}
		c.JSON(http.StatusCreated, supermercado)
	}
}

// PUT /admin/supermercados/:id
func UpdateSupermercado(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		supermercado, ok := supermercadoPorParam(db, c)
		if !ok {
			return
		}

		var input SupermercadoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"nombre":        input.Nombre,
			"url_principal": input.URLPrincipal,
		}
		if err := db.Model(supermercado).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el supermercado"})
			return
		}
		c.JSON(http.StatusOK, supermercado)
	}
}

// DELETE /admin/supermercados/:id
// Borra también sus productos; las cotizaciones que los referencian pierden
// el item vía cascade de la base.
func DeleteSupermercado(db *gorm.DB, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		supermercado, ok := supermercadoPorParam(db, c)
		if !ok {
			return
		}

		if err := db.Where("supermercado_id = ?", supermercado.ID).Delete(&models.Producto{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron eliminar los productos"})
			return
		}
		if err := db.Delete(supermercado).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el supermercado"})
			return
		}

		cc.Invalidate(c.Request.Context(), cache.KeyTipos, cache.KeyComparador)
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Supermercado eliminado"})
	}
}

func supermercadoPorParam(db *gorm.DB, c *gin.Context) (*models.Supermercado, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de supermercado inválido"})
		return nil, false
	}

	var supermercado models.Supermercado
	if err := db.First(&supermercado, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supermercado no encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		}
		return nil, false
	}
	return &supermercado, true
}
