package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
)

// PeriodFilter criterios comunes de las consultas financieras de lectura:
// libro contable, sede y cliente opcionales, y ventana de fechas.
type PeriodFilter struct {
	ProfileID string
	BranchID  *string // nil = sin restricción de sede
	ClientID  *string // nil = todos los clientes; solo aplica a contratos y servicios
	From      time.Time
	To        time.Time
}

// FinanceRepository puerto de solo lectura que alimenta el motor de cálculo
// de inversiones y los reportes. Las implementaciones nunca escriben.
//
// Un fallo de I/O aquí es fatal para el cálculo en curso: sin los datos no
// hay cifra significativa que producir, así que el error se propaga.
type FinanceRepository interface {
	// ListContractsOverlapping devuelve los contratos del perfil cuya ventana
	// se superpone con [From, To), con sus impuestos cargados. Si el filtro
	// trae sede, restringe vía el join contrato → oficina → sede (los
	// contratos no guardan branch_id directo). El prorrateo fino lo hace el
	// motor en memoria; esta consulta solo filtra candidatos.
	ListContractsOverlapping(ctx context.Context, f PeriodFilter) ([]*entity.Contract, error)

	// ListServicesInPeriod devuelve los servicios puntuales del perfil con
	// transaction_date dentro de [From, To), con su impuesto cargado.
	ListServicesInPeriod(ctx context.Context, f PeriodFilter) ([]*entity.ClientService, error)

	// SumTransactions suma ingresos o egresos misceláneos del perfil en el
	// período (kind: entity.TransactionIncome | entity.TransactionExpense).
	// Sin filas devuelve cero, no error (COALESCE).
	SumTransactions(ctx context.Context, kind string, f PeriodFilter) (decimal.Decimal, error)

	// CountOffices devuelve el total de oficinas (de la sede, o de toda la
	// empresa si branchID es nil) y cuántas tienen al menos un contrato
	// activo superpuesto con [from, to].
	CountOffices(ctx context.Context, companyID string, branchID *string, from, to time.Time) (total, occupied int, err error)

	// CountNewClients clientes creados en el período.
	CountNewClients(ctx context.Context, companyID string, from, to time.Time) (int, error)

	// CountContractsSigned contratos del perfil con start_date en el período.
	CountContractsSigned(ctx context.Context, f PeriodFilter) (int, error)

	// SumInvestmentContributions capital aportado por inversionistas del
	// perfil hasta la fecha de corte.
	SumInvestmentContributions(ctx context.Context, profileID string, until time.Time) (decimal.Decimal, error)

	// SumPaidWithdrawals retiros en estado pagado del perfil hasta la fecha
	// de corte. Los pendientes no descuentan del balance.
	SumPaidWithdrawals(ctx context.Context, profileID string, until time.Time) (decimal.Decimal, error)
}
