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

var _ repository.TaxRepository = (*TaxRepo)(nil)

// TaxRepo implementación del puerto TaxRepository sobre PostgreSQL.
type TaxRepo struct {
	pool *pgxpool.Pool
}

// NewTaxRepository construye el adaptador de persistencia para impuestos.
func NewTaxRepository(pool *pgxpool.Pool) *TaxRepo {
	return &TaxRepo{pool: pool}
}

// Create persiste un nuevo impuesto.
func (r *TaxRepo) Create(tax *entity.Tax) error {
	query := `
		INSERT INTO taxes (id, company_id, name, rate, bearer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		tax.ID, tax.CompanyID, tax.Name, tax.Rate, tax.Bearer, tax.CreatedAt, tax.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tax: %w", err)
	}
	return nil
}

// GetByID obtiene un impuesto por ID.
func (r *TaxRepo) GetByID(id string) (*entity.Tax, error) {
	query := `
		SELECT id, company_id, name, rate, bearer, created_at, updated_at
		FROM taxes WHERE id = $1`
	var t entity.Tax
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.Rate, &t.Bearer, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax: %w", err)
	}
	return &t, nil
}

// GetByIDs devuelve los impuestos existentes entre los IDs dados.
func (r *TaxRepo) GetByIDs(ids []string) ([]entity.Tax, error) {
	if len(ids) == 0 {
		return []entity.Tax{}, nil
	}
	query := `
		SELECT id, company_id, name, rate, bearer, created_at, updated_at
		FROM taxes WHERE id = ANY($1)`
	rows, err := r.pool.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get taxes by ids: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Tax, 0, len(ids))
	for rows.Next() {
		var t entity.Tax
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Rate, &t.Bearer, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tax: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update actualiza un impuesto existente.
func (r *TaxRepo) Update(tax *entity.Tax) error {
	query := `
		UPDATE taxes SET name = $2, rate = $3, bearer = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		tax.ID, tax.Name, tax.Rate, tax.Bearer, tax.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tax: %w", err)
	}
	return nil
}

// ListByCompany lista los impuestos de una empresa.
func (r *TaxRepo) ListByCompany(companyID string) ([]*entity.Tax, error) {
	query := `
		SELECT id, company_id, name, rate, bearer, created_at, updated_at
		FROM taxes WHERE company_id = $1 ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list taxes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tax
	for rows.Next() {
		var t entity.Tax
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Rate, &t.Bearer, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tax: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un impuesto por ID.
func (r *TaxRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM taxes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tax: %w", err)
	}
	return nil
}
