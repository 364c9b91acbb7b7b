package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quién asume económicamente un impuesto.
//
// Un impuesto a cargo de la empresa reduce el ingreso reconocido (se descuenta
// antes de contar el ingreso). Un impuesto a cargo del cliente se suma a lo que
// el cliente paga pero nunca reduce el ingreso reconocido.
const (
	TaxBearerClient  = "client"
	TaxBearerCompany = "company"
)

// Tax un impuesto configurable, asociable a contratos, a servicios puntuales
// y al cálculo de participación de inversionistas.
type Tax struct {
	ID        string
	CompanyID string
	Name      string
	Rate      decimal.Decimal // porcentaje, ej: 15 = 15%
	Bearer    string          // TaxBearerClient | TaxBearerCompany
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompanyBorne indica si el impuesto lo asume la empresa.
func (t Tax) IsCompanyBorne() bool {
	return t.Bearer == TaxBearerCompany
}
