package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Producto struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string `gorm:"not null" json:"nombre"`
	Marca       string `json:"marca"`
	Tipo        string `gorm:"index" json:"tipo"` // categoría, ej: pasta, arroz, aceite
	Descripcion string `json:"descripcion"`

	SupermercadoID uint         `gorm:"index;not null" json:"supermercado_id"`
	Supermercado   Supermercado `gorm:"foreignKey:SupermercadoID;constraint:OnDelete:CASCADE" json:"supermercado,omitempty"`

	Precio decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Moneda string          `gorm:"default:CLP" json:"moneda"`

	ImagenURL   string `json:"imagen_url"`
	ProductoURL string `json:"producto_url"`

	// Identificador externo para scraping o APIs de los supermercados.
	CodigoInterno string `json:"codigo_interno"`

	// Sin default en la columna: un false explícito (producto pendiente de
	// revisión) debe llegar a la base, y GORM omite campos en cero cuando
	// hay tag default.
	Disponible         bool      `json:"disponible"`
	FechaActualizacion time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}
