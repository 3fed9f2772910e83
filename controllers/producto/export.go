package productoControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/models"
)

// GET /admin/productos/export
// Descarga todo el catálogo (incluye pendientes) como planilla .xlsx.
func ExportProductosToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productos []models.Producto
		if err := db.Preload("Supermercado").Order("tipo, nombre").Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los productos"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Productos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la planilla"})
			return
		}

		headers := []string{
			"ID", "Nombre", "Marca", "Tipo", "Supermercado",
			"Precio", "Moneda", "Disponible", "CodigoInterno",
			"ProductoURL", "FechaActualizacion",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range productos {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Nombre)
			row.AddCell().SetValue(p.Marca)
			row.AddCell().SetValue(p.Tipo)
			row.AddCell().SetValue(p.Supermercado.Nombre)
			row.AddCell().SetValue(p.Precio.StringFixed(2))
			row.AddCell().SetValue(p.Moneda)
			row.AddCell().SetValue(p.Disponible)
			row.AddCell().SetValue(p.CodigoInterno)
			row.AddCell().SetValue(p.ProductoURL)
			row.AddCell().SetValue(p.FechaActualizacion.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=productos.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo escribir la planilla"})
			return
		}
	}
}
