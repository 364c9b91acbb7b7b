package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, company_id, name, document, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		client.ID, client.CompanyID, client.Name, client.Document, client.Email,
		client.Phone, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, company_id, name, document, email, phone, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, document = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		client.ID, client.Name, client.Document, client.Email, client.Phone, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// ListByCompany lista clientes por empresa con paginación.
func (r *ClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, company_id, name, document, email, phone, created_at, updated_at
		FROM clients WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
