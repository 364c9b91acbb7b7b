package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de oficina.
const (
	OfficeStatusAvailable   = "available"
	OfficeStatusOccupied    = "occupied"
	OfficeStatusMaintenance = "maintenance"
)

// Office una oficina rentable dentro de una sede. Los contratos se vinculan
// a la sede a través de la oficina (no guardan branch_id directo).
type Office struct {
	ID           string
	BranchID     string
	Code         string // identificador visible, ej: "A-301"
	Floor        int
	Capacity     int
	MonthlyPrice decimal.Decimal // precio de lista; el contrato fija su propia tarifa
	Status       string          // ver constantes OfficeStatus*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
