package entity

import "time"

// Profile un libro contable que particiona todos los registros financieros
// (ej. "Valores Reales" vs. una simulación). Exactamente un perfil está
// activo por empresa; el motor de cálculo siempre recibe el profile_id
// explícito y no depende del flag de activación.
type Profile struct {
	ID        string
	CompanyID string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
