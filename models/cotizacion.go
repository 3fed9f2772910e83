package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CotizacionStatus string

const (
	CotizacionAbierta  CotizacionStatus = "open"  // carrito editable, a lo sumo una por usuario
	CotizacionGuardada CotizacionStatus = "saved" // guardada por el usuario, reabrible
	CotizacionEnviada  CotizacionStatus = "sent"  // reservado para un flujo de envío externo
)

type Cotizacion struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// El índice parcial único garantiza a lo sumo una cotización "open" por
	// usuario; el camino get-or-create se apoya en él ante requests simultáneos.
	UsuarioID string           `gorm:"index:idx_cotizacion_abierta,unique,where:status = 'open';not null" json:"usuario_id"`
	Nombre    string           `json:"nombre"`
	Status    CotizacionStatus `gorm:"type:VARCHAR(10);default:'open'" json:"status"`

	Items         []CotizacionItem `gorm:"foreignKey:CotizacionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	FechaCreacion time.Time        `gorm:"autoCreateTime" json:"fecha_creacion"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// Total suma los subtotales de los items. Requiere Items cargados (Preload).
func (c *Cotizacion) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type CotizacionItem struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	CotizacionID uint `gorm:"index;uniqueIndex:idx_cotizacion_producto;not null" json:"cotizacion_id"`
	ProductoID   uint `gorm:"uniqueIndex:idx_cotizacion_producto;not null" json:"producto_id"`

	Producto Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE" json:"producto,omitempty"`

	Cantidad int `gorm:"not null;default:1" json:"cantidad"`

	// Precio al momento de agregar; se refresca en cada add, no en lecturas.
	PrecioUnidad decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio_unidad"`

	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}

func (i *CotizacionItem) Subtotal() decimal.Decimal {
	return i.PrecioUnidad.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}
