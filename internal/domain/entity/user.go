package entity

import "time"

// Roles de usuario (deben coincidir con el CHECK de la tabla users).
const (
	RoleAdmin     = "admin"
	RoleContador  = "contador"
	RoleRecepcion = "recepcion"
)

// User usuario del back-office, siempre asociado a una empresa.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
