package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/cache"
	"github.com/tucanasta/comparador-api/models"
)

// GET /admin/revisiones
// Productos pendientes de revisión (enviados por pymes, disponible=false).
func ListPendingProductos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pendientes []models.Producto
		if err := db.Preload("Supermercado").
			Where("disponible = ?", false).
			Order("fecha_actualizacion ASC").
			Find(&pendientes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las revisiones"})
			return
		}
		c.JSON(http.StatusOK, pendientes)
	}
}

// POST /admin/revisiones/:id/aprobar
func AprobarProducto(db *gorm.DB, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		producto, ok := productoPorParam(db, c)
		if !ok {
			return
		}

		if err := db.Model(producto).Update("disponible", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo aprobar el producto"})
			return
		}

		// El producto ahora es visible: las vistas cacheadas quedan viejas.
		cc.Invalidate(c.Request.Context(), cache.KeyTipos, cache.KeyComparador)

		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Producto aprobado"})
	}
}

// POST /admin/revisiones/:id/rechazar
func RechazarProducto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		producto, ok := productoPorParam(db, c)
		if !ok {
			return
		}
		if producto.Disponible {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El producto ya fue aprobado"})
			return
		}

		if err := db.Delete(producto).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo rechazar el producto"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Producto rechazado"})
	}
}

type EditarProductoInput struct {
	Nombre        *string `json:"nombre"`
	Marca         *string `json:"marca"`
	Tipo          *string `json:"tipo"`
	Descripcion   *string `json:"descripcion"`
	Precio        *string `json:"precio"`
	Moneda        *string `json:"moneda"`
	ImagenURL     *string `json:"imagen_url"`
	ProductoURL   *string `json:"producto_url"`
	CodigoInterno *string `json:"codigo_interno"`
	Disponible    *bool   `json:"disponible"`
}

// PUT /admin/revisiones/:id
func EditarProducto(db *gorm.DB, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		producto, ok := productoPorParam(db, c)
		if !ok {
			return
		}

		var input EditarProductoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Nombre != nil {
			updates["nombre"] = *input.Nombre
		}
		if input.Marca != nil {
			updates["marca"] = *input.Marca
		}
		if input.Tipo != nil {
			updates["tipo"] = *input.Tipo
		}
		if input.Descripcion != nil {
			updates["descripcion"] = *input.Descripcion
		}
		if input.Precio != nil {
			precio, err := decimal.NewFromString(*input.Precio)
			if err != nil || precio.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "precio inválido"})
				return
			}
			updates["precio"] = precio
		}
		if input.Moneda != nil {
			updates["moneda"] = *input.Moneda
		}
		if input.ImagenURL != nil {
			updates["imagen_url"] = *input.ImagenURL
		}
		if input.ProductoURL != nil {
			updates["producto_url"] = *input.ProductoURL
		}
		if input.CodigoInterno != nil {
			updates["codigo_interno"] = *input.CodigoInterno
		}
		if input.Disponible != nil {
			updates["disponible"] = *input.Disponible
		}

		if len(updates) > 0 {
			if err := db.Model(producto).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo editar el producto"})
				return
			}
			cc.Invalidate(c.Request.Context(), cache.KeyTipos, cache.KeyComparador)
		}
		c.JSON(http.StatusOK, producto)
	}
}

func productoPorParam(db *gorm.DB, c *gin.Context) (*models.Producto, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return nil, false
	}

	var producto models.Producto
	if err := db.First(&producto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		}
		return nil, false
	}
	return &producto, true
}
