package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// Cada empresa de coworking administra sus propias sedes, clientes y libros.
type Company struct {
	ID        string
	Name      string
	TaxID     string // identificación tributaria de la empresa
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
