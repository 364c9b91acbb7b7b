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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Create persiste un nuevo perfil.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, company_id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.CompanyID, profile.Name, profile.IsActive,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `
		SELECT id, company_id, name, is_active, created_at, updated_at
		FROM profiles WHERE id = $1`
	var p entity.Profile
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// ListByCompany lista los perfiles de una empresa.
func (r *ProfileRepo) ListByCompany(companyID string) ([]*entity.Profile, error) {
	query := `
		SELECT id, company_id, name, is_active, created_at, updated_at
		FROM profiles WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetActive devuelve el perfil activo de la empresa, o nil si no hay.
func (r *ProfileRepo) GetActive(companyID string) (*entity.Profile, error) {
	query := `
		SELECT id, company_id, name, is_active, created_at, updated_at
		FROM profiles WHERE company_id = $1 AND is_active = TRUE LIMIT 1`
	var p entity.Profile
	err := r.pool.QueryRow(context.Background(), query, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active profile: %w", err)
	}
	return &p, nil
}

// Activate marca el perfil como activo y desactiva los demás de la misma
// empresa. Ambas escrituras van en una sola transacción para mantener el
// invariante de un único perfil activo.
func (r *ProfileRepo) Activate(ctx context.Context, companyID, profileID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE profiles SET is_active = FALSE, updated_at = NOW() WHERE company_id = $1 AND is_active = TRUE`,
		companyID,
	); err != nil {
		return fmt.Errorf("deactivate profiles: %w", err)
	}
	cmd, err := tx.Exec(ctx,
		`UPDATE profiles SET is_active = TRUE, updated_at = NOW() WHERE id = $1 AND company_id = $2`,
		profileID, companyID,
	)
	if err != nil {
		return fmt.Errorf("activate profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("activate profile: perfil %s no existe", profileID)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete elimina un perfil por ID.
func (r *ProfileRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
