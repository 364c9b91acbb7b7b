package dto

import "github.com/shopspring/decimal"

// AnnualReportRequest parámetros para GET /api/reports/annual.
type AnnualReportRequest struct {
	Year      int    `query:"year"`
	BranchID  string `query:"branch_id"`  // opcional
	ProfileID string `query:"profile_id"` // vacío = perfil activo
}

// AnnualReportDTO métricas anuales de la empresa o de una sede.
type AnnualReportDTO struct {
	Year            int             `json:"year"`
	Revenue         decimal.Decimal `json:"revenue"`
	Expenses        decimal.Decimal `json:"expenses"`
	Profit          decimal.Decimal `json:"profit"`
	NewClients      int             `json:"new_clients"`
	ContractsSigned int             `json:"contracts_signed"`
	OccupancyRate   decimal.Decimal `json:"occupancy_rate"` // %
}

// MonthlyReportRequest parámetros para GET /api/reports/monthly.
type MonthlyReportRequest struct {
	Year      int    `query:"year"`
	Month     int    `query:"month"`
	ClientID  string `query:"client_id"`  // opcional: solo contratos y servicios de ese cliente
	BranchID  string `query:"branch_id"`  // opcional
	ProfileID string `query:"profile_id"` // vacío = perfil activo
}

// MonthlyReportDTO métricas de un mes calendario.
type MonthlyReportDTO struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Revenue         decimal.Decimal `json:"revenue"`
	NewClients      int             `json:"new_clients"`
	ContractsSigned int             `json:"contracts_signed"`
	OccupancyRate   decimal.Decimal `json:"occupancy_rate"` // %
}

// BalanceRequest parámetros para GET /api/reports/balance.
type BalanceRequest struct {
	ProfileID string `query:"profile_id"` // vacío = perfil activo
	Cutoff    string `query:"cutoff"`     // YYYY-MM-DD; vacío = hoy
}

// CompanyBalanceDTO balance histórico de la empresa a una fecha de corte:
// (servicios + contratos + otros ingresos + aportes de inversión) −
// (egresos + retiros pagados).
type CompanyBalanceDTO struct {
	Cutoff            string          `json:"cutoff"`
	ContractRevenue   decimal.Decimal `json:"contract_revenue"`
	ServiceRevenue    decimal.Decimal `json:"service_revenue"`
	OtherIncome       decimal.Decimal `json:"other_income"`
	InvestedCapital   decimal.Decimal `json:"invested_capital"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	PaidWithdrawals   decimal.Decimal `json:"paid_withdrawals"`
	Balance           decimal.Decimal `json:"balance"`
}
