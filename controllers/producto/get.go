package productoControllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/cache"
	"github.com/tucanasta/comparador-api/models"
)

// GET /productos/:id
// Devuelve el producto con su supermercado y los productos similares
// (misma categoría, nombre parecido) ordenados por precio para comparar.
func GetProductoByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
			return
		}

		var producto models.Producto
		if err := db.Preload("Supermercado").First(&producto, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cargar el producto"})
			}
			return
		}

		var similares []models.Producto
		if err := db.Preload("Supermercado").
			Where("LOWER(nombre) LIKE LOWER(?) AND tipo = ? AND disponible = ?", "%"+producto.Nombre+"%", producto.Tipo, true).
			Order("precio ASC").
			Find(&similares).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los similares"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "producto": producto, "similares": similares})
	}
}

// GET /tipos
// Lista de categorías distintas para la navegación; se cachea en Redis
// cuando hay cliente configurado.
func GetTipos(db *gorm.DB, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := cc.Get(c.Request.Context(), cache.KeyTipos); ok {
			var tipos []string
			if json.Unmarshal([]byte(cached), &tipos) == nil {
				c.JSON(http.StatusOK, gin.H{"ok": true, "tipos": tipos})
				return
			}
		}

		var tipos []string
		if err := db.Model(&models.Producto{}).
			Where("tipo <> ''").
			Distinct().
			Order("tipo").
			Pluck("tipo", &tipos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las categorías"})
			return
		}

		if payload, err := json.Marshal(tipos); err == nil {
			cc.Set(c.Request.Context(), cache.KeyTipos, string(payload))
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "tipos": tipos})
	}
}

// GET /supermercados
func GetSupermercados(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var supermercados []models.Supermercado
		if err := db.Order("nombre").Find(&supermercados).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los supermercados"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "supermercados": supermercados})
	}
}
