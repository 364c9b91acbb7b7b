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

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	pool *pgxpool.Pool
}

// NewBranchRepository construye el adaptador de persistencia para sedes.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepo {
	return &BranchRepo{pool: pool}
}

// Create persiste una nueva sede.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		branch.ID, branch.CompanyID, branch.Name, branch.Address, branch.Phone,
		branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por ID.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, address, phone, created_at, updated_at
		FROM branches WHERE id = $1`
	var b entity.Branch
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Phone, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// Update actualiza una sede existente.
func (r *BranchRepo) Update(branch *entity.Branch) error {
	query := `
		UPDATE branches SET name = $2, address = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		branch.ID, branch.Name, branch.Address, branch.Phone, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// ListByCompany lista sedes por empresa con paginación.
func (r *BranchRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, address, phone, created_at, updated_at
		FROM branches WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Phone, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina una sede por ID.
func (r *BranchRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	return nil
}

var _ repository.OfficeRepository = (*OfficeRepo)(nil)

// OfficeRepo implementación del puerto OfficeRepository sobre PostgreSQL.
type OfficeRepo struct {
	pool *pgxpool.Pool
}

// NewOfficeRepository construye el adaptador de persistencia para oficinas.
func NewOfficeRepository(pool *pgxpool.Pool) *OfficeRepo {
	return &OfficeRepo{pool: pool}
}

// Create persiste una nueva oficina.
func (r *OfficeRepo) Create(office *entity.Office) error {
	query := `
		INSERT INTO offices (id, branch_id, code, floor, capacity, monthly_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		office.ID, office.BranchID, office.Code, office.Floor, office.Capacity,
		office.MonthlyPrice, office.Status, office.CreatedAt, office.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("office code %s ya existe en la sede: %w", office.Code, err)
		}
		return fmt.Errorf("insert office: %w", err)
	}
	return nil
}

// GetByID obtiene una oficina por ID.
func (r *OfficeRepo) GetByID(id string) (*entity.Office, error) {
	query := `
		SELECT id, branch_id, code, floor, capacity, monthly_price, status, created_at, updated_at
		FROM offices WHERE id = $1`
	var o entity.Office
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.BranchID, &o.Code, &o.Floor, &o.Capacity,
		&o.MonthlyPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get office: %w", err)
	}
	return &o, nil
}

// Update actualiza una oficina existente.
func (r *OfficeRepo) Update(office *entity.Office) error {
	query := `
		UPDATE offices SET code = $2, floor = $3, capacity = $4, monthly_price = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		office.ID, office.Code, office.Floor, office.Capacity,
		office.MonthlyPrice, office.Status, office.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update office: %w", err)
	}
	return nil
}

// ListByBranch lista oficinas de una sede con paginación.
func (r *OfficeRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Office, error) {
	query := `
		SELECT id, branch_id, code, floor, capacity, monthly_price, status, created_at, updated_at
		FROM offices WHERE branch_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Office
	for rows.Next() {
		var o entity.Office
		if err := rows.Scan(&o.ID, &o.BranchID, &o.Code, &o.Floor, &o.Capacity,
			&o.MonthlyPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan office: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Delete elimina una oficina por ID.
func (r *OfficeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete office: %w", err)
	}
	return nil
}
