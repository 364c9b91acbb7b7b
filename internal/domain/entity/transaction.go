package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción miscelánea.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction ingreso o egreso misceláneo, filtrable por período y
// opcionalmente por sede.
type Transaction struct {
	ID              string
	ProfileID       string
	BranchID        *string // nil = movimiento a nivel empresa
	Kind            string  // TransactionIncome | TransactionExpense
	Concept         string
	Amount          decimal.Decimal
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
