package productoControllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tucanasta/comparador-api/models"
)

// GET /productos
// Query params: tipo, q (búsqueda por nombre), marca (repetible),
// tienda (nombre de supermercado, repetible),
// ordenar in {precio_asc, precio_desc, nombre_asc}.
// Solo productos disponibles.
func GetProductos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tipo := c.Query("tipo")
		q := c.Query("q")
		ordenar := c.Query("ordenar")
		marcaFiltro := c.QueryArray("marca")
		tiendaFiltro := c.QueryArray("tienda")

		query := db.Model(&models.Producto{}).
			Preload("Supermercado").
			Where("disponible = ?", true)

		// Columnas calificadas: el filtro por tienda agrega un JOIN con
		// supermercados, que también tiene columna nombre.
		if tipo != "" {
			query = query.Where("LOWER(productos.tipo) = LOWER(?)", tipo)
		}
		if q != "" {
			query = query.Where("LOWER(productos.nombre) LIKE LOWER(?)", "%"+q+"%")
		}
		if len(marcaFiltro) > 0 {
			query = query.Where("productos.marca IN ?", marcaFiltro)
		}
		if len(tiendaFiltro) > 0 {
			query = query.
				Joins("JOIN supermercados ON supermercados.id = productos.supermercado_id").
				Where("supermercados.nombre IN ?", tiendaFiltro)
		}

		switch ordenar {
		case "precio_asc":
			query = query.Order("productos.precio ASC")
		case "precio_desc":
			query = query.Order("productos.precio DESC")
		case "nombre_asc":
			query = query.Order("productos.nombre ASC")
		default:
			query = query.Order("productos.nombre ASC, productos.precio ASC")
		}

		var productos []models.Producto
		if err := query.Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los productos"})
			return
		}

		resp := gin.H{"ok": true, "productos": productos}
		if tipo != "" {
			marcas, tiendas, err := facetsPorTipo(db, tipo)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los filtros"})
				return
			}
			resp["marcas"] = marcas
			resp["tiendas"] = tiendas
		}
		c.JSON(http.StatusOK, resp)
	}
}

// facetsPorTipo arma las marcas y tiendas disponibles dentro de una categoría
// para poblar los filtros del listado.
func facetsPorTipo(db *gorm.DB, tipo string) ([]string, []string, error) {
	var marcasRaw []string
	if err := db.Model(&models.Producto{}).
		Where("LOWER(tipo) = LOWER(?) AND marca <> ''", tipo).
		Distinct().
		Pluck("marca", &marcasRaw).Error; err != nil {
		return nil, nil, err
	}
	seen := make(map[string]bool)
	var marcas []string
	for _, m := range marcasRaw {
		m = strings.TrimSpace(m)
		if m == "" || seen[strings.ToLower(m)] {
			continue
		}
		seen[strings.ToLower(m)] = true
		marcas = append(marcas, m)
	}
	sort.Strings(marcas)

	var tiendas []string
	if err := db.Model(&models.Supermercado{}).
		Joins("JOIN productos ON productos.supermercado_id = supermercados.id").
		Where("LOWER(productos.tipo) = LOWER(?)", tipo).
		Distinct().
		Order("supermercados.nombre").
		Pluck("supermercados.nombre", &tiendas).Error; err != nil {
		return nil, nil, err
	}
	return marcas, tiendas, nil
}
