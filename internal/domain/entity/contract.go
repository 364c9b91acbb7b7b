package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract compromiso de renta recurrente de una oficina.
//
// La ventana activa es [StartDate, EndDate]. Fechas nulas se normalizan en el
// motor de cálculo: inicio nulo → época Unix, fin nulo → ahora. Un contrato
// que se superpone parcialmente con un período aporta solo el ingreso
// proporcional a los días superpuestos.
type Contract struct {
	ID          string
	ProfileID   string
	ClientID    string
	OfficeID    string
	StartDate   *time.Time
	EndDate     *time.Time
	MonthlyRate decimal.Decimal // tarifa plana mensual
	Taxes       []Tax           // many-to-many vía contract_taxes
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
