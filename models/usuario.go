package models

import "time"

type Usuario struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	RUT          string `gorm:"column:rut;unique;not null" json:"rut"`
	Direccion    string `json:"direccion"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Cotizaciones []Cotizacion `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"cotizaciones,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
