package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientService servicio puntual facturable (sala de juntas, papelería,
// horas extra, etc.). Aporta su precio completo (menos impuesto a cargo de la
// empresa, si aplica) al período que contiene TransactionDate.
type ClientService struct {
	ID              string
	ProfileID       string
	ClientID        string
	ContractID      *string // opcional: servicio ligado a un contrato
	Description     string
	Price           decimal.Decimal
	Tax             *Tax // un único impuesto opcional
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
