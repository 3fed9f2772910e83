package models

import "time"

// Pyme es la cuenta de un comercio pequeño; sus productos quedan pendientes
// de revisión hasta que un admin la aprueba.
type Pyme struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID string `gorm:"uniqueIndex;not null" json:"usuario_id"`

	Nombre      string `gorm:"not null" json:"nombre"`
	Telefono    string `json:"telefono"`
	Web         string `json:"web"`
	Direccion   string `json:"direccion"`
	Descripcion string `json:"descripcion"`

	SupermercadoID uint         `gorm:"uniqueIndex" json:"supermercado_id"`
	Supermercado   Supermercado `gorm:"foreignKey:SupermercadoID" json:"supermercado,omitempty"`

	Approved bool `gorm:"default:false" json:"approved"`

	// Documento adjunto para verificación (ruta bajo el dir de uploads).
	Documento string `json:"documento"`

	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
}
