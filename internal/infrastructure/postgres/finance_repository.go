package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo consultas de solo lectura que alimentan el motor de cálculo de
// inversiones y los reportes. Nunca escribe.
type FinanceRepo struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository construye el adaptador de lectura financiera.
func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepo {
	return &FinanceRepo{pool: pool}
}

// ListContractsOverlapping devuelve los contratos del perfil cuya ventana se
// superpone con [From, To). La restricción por sede va por el join
// contrato → oficina → sede. Los impuestos vinculados se cargan en una segunda
// consulta agrupada para evitar N+1.
func (r *FinanceRepo) ListContractsOverlapping(ctx context.Context, f repository.PeriodFilter) ([]*entity.Contract, error) {
	const query = `
	SELECT c.id, c.profile_id, c.client_id, c.office_id, c.start_date, c.end_date,
	       c.monthly_rate, c.created_at, c.updated_at
	FROM contracts c
	JOIN offices  o ON o.id = c.office_id
	WHERE c.profile_id = $1
	  AND ($2::TEXT IS NULL OR o.branch_id = $2)
	  AND ($3::TEXT IS NULL OR c.client_id = $3)
	  AND (c.start_date IS NULL OR c.start_date <  $5)
	  AND (c.end_date   IS NULL OR c.end_date   >= $4)
	ORDER BY c.created_at`

	rows, err := r.pool.Query(ctx, query, f.ProfileID, f.BranchID, f.ClientID, f.From, f.To)
	if err != nil {
		return nil, fmt.Errorf("finance.ListContractsOverlapping: %w", err)
	}
	defer rows.Close()

	var list []*entity.Contract
	byID := map[string]*entity.Contract{}
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.ClientID, &c.OfficeID,
			&c.StartDate, &c.EndDate, &c.MonthlyRate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("finance.ListContractsOverlapping scan: %w", err)
		}
		list = append(list, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("finance.ListContractsOverlapping rows: %w", err)
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	const taxQuery = `
	SELECT ct.contract_id, t.id, t.company_id, t.name, t.rate, t.bearer, t.created_at, t.updated_at
	FROM contract_taxes ct
	JOIN taxes t ON t.id = ct.tax_id
	WHERE ct.contract_id = ANY($1)
	ORDER BY t.name`
	taxRows, err := r.pool.Query(ctx, taxQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("finance.ListContractsOverlapping taxes: %w", err)
	}
	defer taxRows.Close()
	for taxRows.Next() {
		var contractID string
		var t entity.Tax
		if err := taxRows.Scan(&contractID, &t.ID, &t.CompanyID, &t.Name, &t.Rate, &t.Bearer,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("finance.ListContractsOverlapping scan tax: %w", err)
		}
		if c, ok := byID[contractID]; ok {
			c.Taxes = append(c.Taxes, t)
		}
	}
	return list, taxRows.Err()
}

// ListServicesInPeriod devuelve los servicios del perfil dentro de [From, To)
// con su impuesto opcional cargado vía LEFT JOIN.
func (r *FinanceRepo) ListServicesInPeriod(ctx context.Context, f repository.PeriodFilter) ([]*entity.ClientService, error) {
	query := serviceSelect + `
	WHERE s.profile_id = $1
	  AND ($2::TEXT IS NULL OR s.client_id = $2)
	  AND s.transaction_date >= $3 AND s.transaction_date < $4
	ORDER BY s.transaction_date`

	rows, err := r.pool.Query(ctx, query, f.ProfileID, f.ClientID, f.From, f.To)
	if err != nil {
		return nil, fmt.Errorf("finance.ListServicesInPeriod: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientService
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("finance.ListServicesInPeriod scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SumTransactions suma ingresos o egresos misceláneos del perfil en [From, To).
// COALESCE devuelve cero si no hay filas.
func (r *FinanceRepo) SumTransactions(ctx context.Context, kind string, f repository.PeriodFilter) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM transactions
	WHERE profile_id = $1
	  AND kind = $2
	  AND ($3::TEXT IS NULL OR branch_id = $3)
	  AND transaction_date >= $4 AND transaction_date < $5`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, f.ProfileID, kind, f.BranchID, f.From, f.To).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("finance.SumTransactions: %w", err)
	}
	return total, nil
}

// CountOffices devuelve el total de oficinas de la sede (o de toda la empresa
// si branchID es nil) y cuántas tienen al menos un contrato superpuesto con la
// ventana. La ocupación se deriva de contratos reales, no del campo status.
func (r *FinanceRepo) CountOffices(ctx context.Context, companyID string, branchID *string, from, to time.Time) (total, occupied int, err error) {
	const query = `
	SELECT
	    COUNT(*) AS total,
	    COUNT(*) FILTER (
	        WHERE EXISTS (
	            SELECT 1 FROM contracts c
	            WHERE c.office_id = o.id
	              AND (c.start_date IS NULL OR c.start_date <  $4)
	              AND (c.end_date   IS NULL OR c.end_date   >= $3)
	        )
	    ) AS occupied
	FROM offices o
	JOIN branches b ON b.id = o.branch_id
	WHERE b.company_id = $1
	  AND ($2::TEXT IS NULL OR o.branch_id = $2)`

	err = r.pool.QueryRow(ctx, query, companyID, branchID, from, to).Scan(&total, &occupied)
	if err != nil {
		return 0, 0, fmt.Errorf("finance.CountOffices: %w", err)
	}
	return total, occupied, nil
}

// CountNewClients clientes de la empresa creados dentro de [from, to).
func (r *FinanceRepo) CountNewClients(ctx context.Context, companyID string, from, to time.Time) (int, error) {
	const query = `
	SELECT COUNT(*) FROM clients
	WHERE company_id = $1 AND created_at >= $2 AND created_at < $3`

	var count int
	if err := r.pool.QueryRow(ctx, query, companyID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("finance.CountNewClients: %w", err)
	}
	return count, nil
}

// CountContractsSigned contratos del perfil con start_date dentro de [From, To).
func (r *FinanceRepo) CountContractsSigned(ctx context.Context, f repository.PeriodFilter) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM contracts c
	JOIN offices o ON o.id = c.office_id
	WHERE c.profile_id = $1
	  AND ($2::TEXT IS NULL OR o.branch_id = $2)
	  AND ($3::TEXT IS NULL OR c.client_id = $3)
	  AND c.start_date >= $4 AND c.start_date < $5`

	var count int
	if err := r.pool.QueryRow(ctx, query, f.ProfileID, f.BranchID, f.ClientID, f.From, f.To).Scan(&count); err != nil {
		return 0, fmt.Errorf("finance.CountContractsSigned: %w", err)
	}
	return count, nil
}

// SumInvestmentContributions capital aportado por inversionistas del perfil
// hasta la fecha de corte.
func (r *FinanceRepo) SumInvestmentContributions(ctx context.Context, profileID string, until time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM investments
	WHERE profile_id = $1 AND starting_date <= $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, profileID, until).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("finance.SumInvestmentContributions: %w", err)
	}
	return total, nil
}

// SumPaidWithdrawals retiros pagados del perfil hasta la fecha de corte.
// Los pendientes no descuentan del balance.
func (r *FinanceRepo) SumPaidWithdrawals(ctx context.Context, profileID string, until time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM withdrawals
	WHERE profile_id = $1 AND status = 'paid' AND transaction_date <= $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, profileID, until).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("finance.SumPaidWithdrawals: %w", err)
	}
	return total, nil
}
