package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

var _ repository.InvestmentRepository = (*InvestmentRepo)(nil)

// InvestmentRepo implementación del puerto InvestmentRepository sobre PostgreSQL.
type InvestmentRepo struct {
	pool *pgxpool.Pool
}

// NewInvestmentRepository construye el adaptador de persistencia para inversiones.
func NewInvestmentRepository(pool *pgxpool.Pool) *InvestmentRepo {
	return &InvestmentRepo{pool: pool}
}

// Create persiste una nueva inversión.
func (r *InvestmentRepo) Create(investment *entity.Investment) error {
	query := `
		INSERT INTO investments (id, company_id, profile_id, branch_id, investor_name, amount, percentage, starting_date, ending_date, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		investment.ID, investment.CompanyID, investment.ProfileID, investment.BranchID,
		investment.InvestorName, investment.Amount, investment.Percentage,
		investment.StartingDate, investment.EndingDate, investment.Type,
		investment.CreatedAt, investment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	return nil
}

// GetByID obtiene una inversión por ID.
func (r *InvestmentRepo) GetByID(id string) (*entity.Investment, error) {
	query := `
		SELECT id, company_id, profile_id, branch_id, investor_name, amount, percentage, starting_date, ending_date, type, created_at, updated_at
		FROM investments WHERE id = $1`
	var i entity.Investment
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.CompanyID, &i.ProfileID, &i.BranchID, &i.InvestorName,
		&i.Amount, &i.Percentage, &i.StartingDate, &i.EndingDate, &i.Type,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investment: %w", err)
	}
	return &i, nil
}

// Update actualiza una inversión existente.
func (r *InvestmentRepo) Update(investment *entity.Investment) error {
	query := `
		UPDATE investments SET investor_name = $2, percentage = $3, starting_date = $4, ending_date = $5, type = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		investment.ID, investment.InvestorName, investment.Percentage,
		investment.StartingDate, investment.EndingDate, investment.Type, investment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update investment: %w", err)
	}
	return nil
}

// ListByCompany lista inversiones de la empresa con paginación. Con limit 0
// devuelve todas (el cálculo de participación opera sobre el conjunto completo).
func (r *InvestmentRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Investment, error) {
	query := `
		SELECT id, company_id, profile_id, branch_id, investor_name, amount, percentage, starting_date, ending_date, type, created_at, updated_at
		FROM investments WHERE company_id = $1 ORDER BY created_at DESC`
	args := []any{companyID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Investment
	for rows.Next() {
		var i entity.Investment
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.ProfileID, &i.BranchID, &i.InvestorName,
			&i.Amount, &i.Percentage, &i.StartingDate, &i.EndingDate, &i.Type,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina una inversión por ID.
func (r *InvestmentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM investments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	return nil
}

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo implementación del puerto WithdrawalRepository sobre PostgreSQL.
type WithdrawalRepo struct {
	pool *pgxpool.Pool
}

// NewWithdrawalRepository construye el adaptador de persistencia para retiros.
func NewWithdrawalRepository(pool *pgxpool.Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// Create persiste un nuevo retiro.
func (r *WithdrawalRepo) Create(withdrawal *entity.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (id, profile_id, investment_id, amount, status, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		withdrawal.ID, withdrawal.ProfileID, withdrawal.InvestmentID,
		withdrawal.Amount, withdrawal.Status, withdrawal.TransactionDate,
		withdrawal.CreatedAt, withdrawal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID obtiene un retiro por ID.
func (r *WithdrawalRepo) GetByID(id string) (*entity.Withdrawal, error) {
	query := `
		SELECT id, profile_id, investment_id, amount, status, transaction_date, created_at, updated_at
		FROM withdrawals WHERE id = $1`
	var w entity.Withdrawal
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.ProfileID, &w.InvestmentID, &w.Amount, &w.Status,
		&w.TransactionDate, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal: %w", err)
	}
	return &w, nil
}

// MarkPaid cambia el estado del retiro a pagado.
func (r *WithdrawalRepo) MarkPaid(id string) error {
	query := `
		UPDATE withdrawals SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, entity.WithdrawalStatusPaid)
	if err != nil {
		return fmt.Errorf("mark withdrawal paid: %w", err)
	}
	return nil
}

// ListByProfile lista retiros de un perfil con paginación.
func (r *WithdrawalRepo) ListByProfile(profileID string, limit, offset int) ([]*entity.Withdrawal, error) {
	query := `
		SELECT id, profile_id, investment_id, amount, status, transaction_date, created_at, updated_at
		FROM withdrawals WHERE profile_id = $1 ORDER BY transaction_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(&w.ID, &w.ProfileID, &w.InvestmentID, &w.Amount, &w.Status,
			&w.TransactionDate, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete elimina un retiro por ID.
func (r *WithdrawalRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM withdrawals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete withdrawal: %w", err)
	}
	return nil
}
