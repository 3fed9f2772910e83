package cotizacionControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /user/cotizacion/agregar  o  /user/cotizacion/agregar/:producto_id
// Acepta form params: product_id (o pk), cantidad opcional.
func AgregarItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		idParam := c.Param("producto_id")
		if idParam == "" {
			idParam = c.PostForm("product_id")
		}
		if idParam == "" {
			idParam = c.PostForm("pk")
		}
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "product_id faltante"})
			return
		}

		productoID, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "product_id inválido"})
			return
		}

		// Cantidad mal formada se recupera en silencio como 1 (política
		// heredada y documentada, no un descuido).
		cantidad, err := strconv.Atoi(c.DefaultPostForm("cantidad", "1"))
		if err != nil {
			cantidad = 1
		}

		result, err := AgregarItem(db, usuarioID, uint(productoID), cantidad)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Producto no existe"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudo agregar el producto"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":       true,
			"item_id":  result.ItemID,
			"producto": result.Producto,
			"cantidad": result.Cantidad,
			"subtotal": result.Subtotal,
			"total":    result.Total,
		})
	}
}

// GET /user/cotizacion
func VerCotizacion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		cot, err := VerAbierta(db, usuarioID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudo cargar la cotización"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"cotizacion": cot,
			"items":      cot.Items,
			"total":      cot.Total(),
		})
	}
}

// POST /user/cotizacion/actualizar  (form: item_id, cantidad)
func ActualizarItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		itemID, ok := parseItemID(c)
		if !ok {
			return
		}
		cantidad, err := strconv.Atoi(c.DefaultPostForm("cantidad", "1"))
		if err != nil {
			cantidad = 1
		}

		msg, total, err := ActualizarItem(db, usuarioID, itemID, cantidad)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Item no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudo actualizar el item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "msg": msg, "total": total})
	}
}

// POST /user/cotizacion/item/eliminar  (form: item_id)
func EliminarItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		itemID, ok := parseItemID(c)
		if !ok {
			return
		}

		total, err := EliminarItem(db, usuarioID, itemID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Item no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudo eliminar el item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "total": total})
	}
}

// POST /user/cotizacion/guardar  (form: nombre opcional)
func GuardarCotizacion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		cotID, err := Guardar(db, usuarioID, c.PostForm("nombre"))
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "No hay cotización abierta"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudo guardar la cotización"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "cotizacion_id": cotID})
	}
}

// GET /user/cotizaciones
func MisCotizaciones(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		cots, err := Listar(db, usuarioID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudieron cargar las cotizaciones"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "cotizaciones": cots})
	}
}

// POST /user/cotizacion/reabrir  (form: cot_id)
func ReabrirCotizacion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		cotID, ok := parseCotID(c)
		if !ok {
			return
		}

		if err := Reabrir(db, usuarioID, cotID); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Cotización no encontrada"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudo reabrir la cotización"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "cotizacion_id": cotID})
	}
}

// POST /user/cotizacion/eliminar  (form: cot_id)
func EliminarCotizacion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		cotID, ok := parseCotID(c)
		if !ok {
			return
		}

		if err := Eliminar(db, usuarioID, cotID); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Cotización no encontrada"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "No se pudo eliminar la cotización"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func parseItemID(c *gin.Context) (uint, bool) {
	idStr := c.PostForm("item_id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "item_id faltante"})
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "item_id inválido"})
		return 0, false
	}
	return uint(id), true
}

func parseCotID(c *gin.Context) (uint, bool) {
	idStr := c.PostForm("cot_id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "cot_id faltante"})
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "cot_id inválido"})
		return 0, false
	}
	return uint(id), true
}
