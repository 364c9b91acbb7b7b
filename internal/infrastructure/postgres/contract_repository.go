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

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
// Mantiene los vínculos contract_taxes junto con el contrato, en una sola
// transacción.
type ContractRepo struct {
	pool *pgxpool.Pool
}

// NewContractRepository construye el adaptador de persistencia para contratos.
func NewContractRepository(pool *pgxpool.Pool) *ContractRepo {
	return &ContractRepo{pool: pool}
}

// Create persiste un contrato con sus impuestos vinculados.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO contracts (id, profile_id, client_id, office_id, start_date, end_date, monthly_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.Exec(ctx, query,
		contract.ID, contract.ProfileID, contract.ClientID, contract.OfficeID,
		contract.StartDate, contract.EndDate, contract.MonthlyRate,
		contract.CreatedAt, contract.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	if err := insertContractTaxes(ctx, tx, contract); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID, con sus impuestos cargados.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `
		SELECT id, profile_id, client_id, office_id, start_date, end_date, monthly_rate, created_at, updated_at
		FROM contracts WHERE id = $1`
	var c entity.Contract
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ProfileID, &c.ClientID, &c.OfficeID,
		&c.StartDate, &c.EndDate, &c.MonthlyRate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	taxes, err := r.taxesFor(context.Background(), c.ID)
	if err != nil {
		return nil, err
	}
	c.Taxes = taxes
	return &c, nil
}

// Update actualiza un contrato y reemplaza sus vínculos de impuestos.
func (r *ContractRepo) Update(contract *entity.Contract) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE contracts SET start_date = $2, end_date = $3, monthly_rate = $4, updated_at = $5
		WHERE id = $1`
	if _, err := tx.Exec(ctx, query,
		contract.ID, contract.StartDate, contract.EndDate, contract.MonthlyRate, contract.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM contract_taxes WHERE contract_id = $1`, contract.ID); err != nil {
		return fmt.Errorf("clear contract taxes: %w", err)
	}
	if err := insertContractTaxes(ctx, tx, contract); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListByProfile lista contratos de un perfil con paginación, con impuestos.
func (r *ContractRepo) ListByProfile(profileID string, limit, offset int) ([]*entity.Contract, error) {
	query := `
		SELECT id, profile_id, client_id, office_id, start_date, end_date, monthly_rate, created_at, updated_at
		FROM contracts WHERE profile_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.ClientID, &c.OfficeID,
			&c.StartDate, &c.EndDate, &c.MonthlyRate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		taxes, err := r.taxesFor(context.Background(), c.ID)
		if err != nil {
			return nil, err
		}
		c.Taxes = taxes
	}
	return list, nil
}

// Delete elimina un contrato y sus vínculos de impuestos.
func (r *ContractRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}

func (r *ContractRepo) taxesFor(ctx context.Context, contractID string) ([]entity.Tax, error) {
	query := `
		SELECT t.id, t.company_id, t.name, t.rate, t.bearer, t.created_at, t.updated_at
		FROM taxes t
		JOIN contract_taxes ct ON ct.tax_id = t.id
		WHERE ct.contract_id = $1
		ORDER BY t.name`
	rows, err := r.pool.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("contract taxes: %w", err)
	}
	defer rows.Close()
	var taxes []entity.Tax
	for rows.Next() {
		var t entity.Tax
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Rate, &t.Bearer, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contract tax: %w", err)
		}
		taxes = append(taxes, t)
	}
	return taxes, rows.Err()
}

func insertContractTaxes(ctx context.Context, tx pgx.Tx, contract *entity.Contract) error {
	for _, t := range contract.Taxes {
		if _, err := tx.Exec(ctx,
			`INSERT INTO contract_taxes (contract_id, tax_id) VALUES ($1, $2)`,
			contract.ID, t.ID,
		); err != nil {
			return fmt.Errorf("insert contract tax: %w", err)
		}
	}
	return nil
}
