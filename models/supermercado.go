package models

type Supermercado struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre       string `gorm:"unique;not null" json:"nombre"`
	URLPrincipal string `json:"url_principal"`
}
