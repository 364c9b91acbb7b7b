package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Perfiles (libros contables) ───────────────────────────────────────────────

// CreateProfileRequest alta de libro contable.
type CreateProfileRequest struct {
	Name string `json:"name"`
}

// ProfileResponse perfil serializado.
type ProfileResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Impuestos ─────────────────────────────────────────────────────────────────

// CreateTaxRequest alta de impuesto.
type CreateTaxRequest struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Bearer string          `json:"bearer"` // client | company
}

// UpdateTaxRequest actualización parcial de impuesto.
type UpdateTaxRequest struct {
	Name   *string          `json:"name"`
	Rate   *decimal.Decimal `json:"rate"`
	Bearer *string          `json:"bearer"`
}

// ── Servicios puntuales ───────────────────────────────────────────────────────

// CreateClientServiceRequest alta de servicio puntual.
type CreateClientServiceRequest struct {
	ProfileID       string          `json:"profile_id"`
	ClientID        string          `json:"client_id"`
	ContractID      *string         `json:"contract_id"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	TaxID           *string         `json:"tax_id"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD
}

// ClientServiceResponse servicio serializado.
type ClientServiceResponse struct {
	ID              string          `json:"id"`
	ProfileID       string          `json:"profile_id"`
	ClientID        string          `json:"client_id"`
	ContractID      *string         `json:"contract_id,omitempty"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Tax             *TaxDTO         `json:"tax,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ── Transacciones misceláneas ─────────────────────────────────────────────────

// CreateTransactionRequest alta de ingreso/egreso.
type CreateTransactionRequest struct {
	ProfileID       string          `json:"profile_id"`
	BranchID        *string         `json:"branch_id"`
	Kind            string          `json:"kind"` // income | expense
	Concept         string          `json:"concept"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD
}

// TransactionResponse transacción serializada.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ProfileID       string          `json:"profile_id"`
	BranchID        *string         `json:"branch_id,omitempty"`
	Kind            string          `json:"kind"`
	Concept         string          `json:"concept"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ── Retiros ───────────────────────────────────────────────────────────────────

// CreateWithdrawalRequest alta de retiro de utilidades.
type CreateWithdrawalRequest struct {
	ProfileID       string          `json:"profile_id"`
	InvestmentID    *string         `json:"investment_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD
}

// WithdrawalResponse retiro serializado.
type WithdrawalResponse struct {
	ID              string          `json:"id"`
	ProfileID       string          `json:"profile_id"`
	InvestmentID    *string         `json:"investment_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}
