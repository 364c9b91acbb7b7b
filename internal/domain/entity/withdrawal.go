package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de retiro.
const (
	WithdrawalStatusPending = "pending"
	WithdrawalStatusPaid    = "paid"
)

// Withdrawal retiro de utilidades de un inversionista. Solo los retiros
// pagados descuentan del balance histórico de la empresa.
type Withdrawal struct {
	ID              string
	ProfileID       string
	InvestmentID    *string
	Amount          decimal.Decimal
	Status          string // WithdrawalStatusPending | WithdrawalStatusPaid
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
