package entity

import "time"

// Client cliente de la empresa (persona o compañía que renta oficinas).
type Client struct {
	ID        string
	CompanyID string
	Name      string
	Document  string // documento de identidad o registro mercantil
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
