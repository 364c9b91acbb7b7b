package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Sedes ─────────────────────────────────────────────────────────────────────

// CreateBranchRequest alta de sede.
type CreateBranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateBranchRequest actualización parcial de sede.
type UpdateBranchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// BranchResponse sede serializada.
type BranchResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BranchListResponse listado paginado de sedes.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ── Oficinas ──────────────────────────────────────────────────────────────────

// CreateOfficeRequest alta de oficina en una sede.
type CreateOfficeRequest struct {
	Code         string          `json:"code"`
	Floor        int             `json:"floor"`
	Capacity     int             `json:"capacity"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
}

// UpdateOfficeRequest actualización parcial de oficina.
type UpdateOfficeRequest struct {
	Code         *string          `json:"code"`
	Floor        *int             `json:"floor"`
	Capacity     *int             `json:"capacity"`
	MonthlyPrice *decimal.Decimal `json:"monthly_price"`
	Status       *string          `json:"status"`
}

// OfficeResponse oficina serializada.
type OfficeResponse struct {
	ID           string          `json:"id"`
	BranchID     string          `json:"branch_id"`
	Code         string          `json:"code"`
	Floor        int             `json:"floor"`
	Capacity     int             `json:"capacity"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OfficeListResponse listado paginado de oficinas.
type OfficeListResponse struct {
	Items []OfficeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
