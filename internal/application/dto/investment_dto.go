package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── CRUD ──────────────────────────────────────────────────────────────────────

// CreateInvestmentRequest alta de inversión.
type CreateInvestmentRequest struct {
	ProfileID    *string         `json:"profile_id"`
	BranchID     *string         `json:"branch_id"`
	InvestorName string          `json:"investor_name"`
	Amount       decimal.Decimal `json:"amount"`
	Percentage   decimal.Decimal `json:"percentage"` // 0–100
	StartingDate string          `json:"starting_date"`
	EndingDate   string          `json:"ending_date"`
	Type         string          `json:"type"` // comprehensive | contractual
}

// UpdateInvestmentRequest actualización parcial de inversión.
type UpdateInvestmentRequest struct {
	InvestorName *string          `json:"investor_name"`
	Percentage   *decimal.Decimal `json:"percentage"`
	StartingDate *string          `json:"starting_date"`
	EndingDate   *string          `json:"ending_date"`
	Type         *string          `json:"type"`
}

// InvestmentResponse inversión serializada.
type InvestmentResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	ProfileID    *string         `json:"profile_id,omitempty"`
	BranchID     *string         `json:"branch_id,omitempty"`
	InvestorName string          `json:"investor_name"`
	Amount       decimal.Decimal `json:"amount"`
	Percentage   decimal.Decimal `json:"percentage"`
	StartingDate time.Time       `json:"starting_date"`
	EndingDate   time.Time       `json:"ending_date"`
	Type         string          `json:"type"`
	CreatedAt    time.Time       `json:"created_at"`
}

// InvestmentListResponse listado paginado de inversiones.
type InvestmentListResponse struct {
	Items []InvestmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ── Cálculo de participación ──────────────────────────────────────────────────

// AppliedTaxDTO impuesto aplicado sobre la participación bruta.
type AppliedTaxDTO struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// InvestmentCalculationDetails desglose completo del cálculo.
type InvestmentCalculationDetails struct {
	IncomeAmount     decimal.Decimal `json:"income_amount"`     // ingresos misceláneos
	ServiceRevenue   decimal.Decimal `json:"service_revenue"`   // servicios puntuales (neto)
	ContractRevenue  decimal.Decimal `json:"contract_revenue"`  // contratos prorrateados (neto)
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	TotalNetProfit   decimal.Decimal `json:"total_net_profit"`
	GrossProfitShare decimal.Decimal `json:"gross_profit_share"`
	TotalTaxAmount   decimal.Decimal `json:"total_tax_amount"`
	AppliedTaxes     []AppliedTaxDTO `json:"applied_taxes"`
	NetProfitShare   decimal.Decimal `json:"net_profit_share"`
}

// InvestmentCalculationResult resultado por inversión. Se construye fresco en
// cada invocación; el motor no lo persiste.
type InvestmentCalculationResult struct {
	BranchNetProfitSelectedPeriod decimal.Decimal              `json:"branch_net_profit_selected_period"`
	YourProfitShareSelectedPeriod decimal.Decimal              `json:"your_profit_share_selected_period"`
	Details                       InvestmentCalculationDetails `json:"details"`
}

// InvestmentCalculationsResponse mapa inversión → resultado.
type InvestmentCalculationsResponse struct {
	Results map[string]InvestmentCalculationResult `json:"results"`
}
