package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Contratos ─────────────────────────────────────────────────────────────────

// CreateContractRequest alta de contrato. Las fechas aceptan YYYY-MM-DD y
// pueden omitirse (inicio → época, fin → abierto).
type CreateContractRequest struct {
	ProfileID   string          `json:"profile_id"`
	ClientID    string          `json:"client_id"`
	OfficeID    string          `json:"office_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	TaxIDs      []string        `json:"tax_ids"`
}

// UpdateContractRequest actualización parcial de contrato.
type UpdateContractRequest struct {
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
	MonthlyRate *decimal.Decimal `json:"monthly_rate"`
	TaxIDs      *[]string        `json:"tax_ids"`
}

// TaxDTO impuesto serializado.
type TaxDTO struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Bearer string          `json:"bearer"` // client | company
}

// ContractResponse contrato con sus impuestos.
type ContractResponse struct {
	ID          string          `json:"id"`
	ProfileID   string          `json:"profile_id"`
	ClientID    string          `json:"client_id"`
	OfficeID    string          `json:"office_id"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	Taxes       []TaxDTO        `json:"taxes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ContractListResponse listado paginado de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
