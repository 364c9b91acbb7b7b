package entity

import "time"

// Branch representa una sede física de la empresa (edificio o piso completo).
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
