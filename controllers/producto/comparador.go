package productoControllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/cache"
	"github.com/tucanasta/comparador-api/models"
)

type filaComparador struct {
	Supermercado models.Supermercado `json:"supermercado"`
	Productos    []models.Producto   `json:"productos"`
}

// GET /comparador
// Vista principal: por cada supermercado, los 10 productos disponibles
// actualizados más recientemente.
func Comparador(db *gorm.DB, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cached, ok := cc.Get(c.Request.Context(), cache.KeyComparador); ok {
			var filas []filaComparador
			if json.Unmarshal([]byte(cached), &filas) == nil {
				c.JSON(http.StatusOK, gin.H{"ok": true, "supermercados": filas})
				return
			}
		}

		var supermercados []models.Supermercado
		if err := db.Order("nombre").Find(&supermercados).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los supermercados"})
			return
		}

		filas := make([]filaComparador, 0, len(supermercados))
		for _, s := range supermercados {
			var productos []models.Producto
			if err := db.Where("supermercado_id = ? AND disponible = ?", s.ID, true).
				Order("fecha_actualizacion DESC").
				Limit(10).
				Find(&productos).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los productos"})
				return
			}
			filas = append(filas, filaComparador{Supermercado: s, Productos: productos})
		}

		if payload, err := json.Marshal(filas); err == nil {
			cc.Set(c.Request.Context(), cache.KeyComparador, string(payload))
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "supermercados": filas})
	}
}
