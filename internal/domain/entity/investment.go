package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de inversión: determinan la estrategia de cálculo de participación.
//
//   - comprehensive: participación sobre la utilidad neta completa
//     (contratos + servicios + otros ingresos − egresos).
//   - contractual: participación solo sobre el ingreso por contratos.
const (
	InvestmentTypeComprehensive = "comprehensive"
	InvestmentTypeContractual   = "contractual"
)

// Investment participación de un inversionista en las utilidades de una sede
// durante un período acotado.
//
// Invariante: si ProfileID es nil la inversión no puede vincular actividad
// financiera y su participación es siempre cero.
type Investment struct {
	ID           string
	CompanyID    string
	ProfileID    *string
	BranchID     *string // nil = participación sobre toda la empresa
	InvestorName string
	Amount       decimal.Decimal // capital aportado
	Percentage   decimal.Decimal // 0–100
	StartingDate time.Time
	EndingDate   time.Time
	Type         string // ver constantes InvestmentType*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
