package pymeControllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/models"
)

// POST /pyme/registro (multipart)
// Crea la pyme del usuario junto con su supermercado. Queda pendiente de
// aprobación; el documento de verificación es opcional.
func Registro(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		var existente models.Pyme
		if err := db.Where("usuario_id = ?", usuarioID).First(&existente).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya tienes una pyme registrada"})
			return
		}

		nombre := c.PostForm("nombre")
		if nombre == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nombre es requerido"})
			return
		}

		supermercado := models.Supermercado{
			Nombre:       nombre,
			URLPrincipal: c.PostForm("web"),
		}
		if err := db.Create(&supermercado).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe una tienda con ese nombre"})
			return
		}

		documento := ""
		if file, err := c.FormFile("documento"); err == nil {
			saveDir := filepath.Join(uploadsDir(), "pyme_docs")
			if err := os.MkdirAll(saveDir, 0755); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el documento"})
				return
			}
			filename := strings.ReplaceAll(file.Filename, " ", "_")
			dest := filepath.Join(saveDir, filename)
			if err := c.SaveUploadedFile(file, dest); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el documento"})
				return
			}
			documento = filepath.Join("pyme_docs", filename)
		}

		pyme := models.Pyme{
			UsuarioID:      usuarioID,
			Nombre:         nombre,
			Telefono:       c.PostForm("telefono"),
			Web:            c.PostForm("web"),
			Direccion:      c.PostForm("direccion"),
			Descripcion:    c.PostForm("descripcion"),
			SupermercadoID: supermercado.ID,
			Approved:       false,
			Documento:      documento,
		}
		if err := db.Create(&pyme).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar la pyme"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true, "pyme": pyme})
	}
}

// GET /pyme/dashboard
// Perfil de la pyme y los productos de su tienda, incluidos los pendientes.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		pyme, ok := pymeDelUsuario(db, c, usuarioID)
		if !ok {
			return
		}

		var productos []models.Producto
		if err := db.Where("supermercado_id = ?", pyme.SupermercadoID).
			Order("fecha_actualizacion DESC").
			Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los productos"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "pyme": pyme, "productos": productos})
	}
}

// POST /pyme/productos (form)
// Envía un producto a revisión: se crea con disponible=false hasta que un
// admin lo apruebe. Requiere pyme aprobada.
func SubmitProducto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.GetString("user_id")

		pyme, ok := pymeDelUsuario(db, c, usuarioID)
		if !ok {
			return
		}
		if !pyme.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pyme pendiente de aprobación"})
			return
		}

		nombre := c.PostForm("nombre")
		tipo := c.PostForm("tipo")
		precioStr := c.PostForm("precio")
		if nombre == "" || tipo == "" || precioStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nombre, tipo y precio son requeridos"})
			return
		}
		precio, err := decimal.NewFromString(precioStr)
		if err != nil || precio.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "precio inválido"})
			return
		}

		moneda := c.PostForm("moneda")
		if moneda == "" {
			moneda = "CLP"
		}

		producto := models.Producto{
			Nombre:         nombre,
			Marca:          c.PostForm("marca"),
			Tipo:           tipo,
			Descripcion:    c.PostForm("descripcion"),
			SupermercadoID: pyme.SupermercadoID,
			Precio:         precio,
			Moneda:         moneda,
			ImagenURL:      c.PostForm("imagen_url"),
			ProductoURL:    c.PostForm("producto_url"),
			CodigoInterno:  c.PostForm("codigo_interno"),
			Disponible:     false,
		}
		if err := db.Create(&producto).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo enviar el producto"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true, "producto": producto})
	}
}

func pymeDelUsuario(db *gorm.DB, c *gin.Context, usuarioID string) (*models.Pyme, bool) {
	var pyme models.Pyme
	if err := db.Preload("Supermercado").Where("usuario_id = ?", usuarioID).First(&pyme).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No tienes una pyme registrada"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		}
		return nil, false
	}
	return &pyme, true
}

func uploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}
