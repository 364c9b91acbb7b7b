package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

var _ repository.ClientServiceRepository = (*ClientServiceRepo)(nil)

// ClientServiceRepo implementación del puerto ClientServiceRepository sobre
// PostgreSQL. El impuesto opcional se carga con LEFT JOIN.
type ClientServiceRepo struct {
	pool *pgxpool.Pool
}

// NewClientServiceRepository construye el adaptador de persistencia para
// servicios puntuales.
func NewClientServiceRepository(pool *pgxpool.Pool) *ClientServiceRepo {
	return &ClientServiceRepo{pool: pool}
}

// Create persiste un nuevo servicio.
func (r *ClientServiceRepo) Create(service *entity.ClientService) error {
	var taxID *string
	if service.Tax != nil {
		taxID = &service.Tax.ID
	}
	query := `
		INSERT INTO client_services (id, profile_id, client_id, contract_id, description, price, tax_id, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		service.ID, service.ProfileID, service.ClientID, service.ContractID,
		service.Description, service.Price, taxID, service.TransactionDate,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID, con su impuesto si tiene.
func (r *ClientServiceRepo) GetByID(id string) (*entity.ClientService, error) {
	query := serviceSelect + ` WHERE s.id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client service: %w", err)
	}
	return s, nil
}

// ListByProfile lista servicios de un perfil con paginación.
func (r *ClientServiceRepo) ListByProfile(profileID string, limit, offset int) ([]*entity.ClientService, error) {
	query := serviceSelect + `
		WHERE s.profile_id = $1 ORDER BY s.transaction_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, profileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list client services: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientService
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un servicio por ID.
func (r *ClientServiceRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM client_services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client service: %w", err)
	}
	return nil
}

const serviceSelect = `
	SELECT s.id, s.profile_id, s.client_id, s.contract_id, s.description, s.price,
	       s.transaction_date, s.created_at, s.updated_at,
	       t.id, t.company_id, t.name, t.rate, t.bearer, t.created_at, t.updated_at
	FROM client_services s
	LEFT JOIN taxes t ON t.id = s.tax_id`

// scanService lee una fila del SELECT con LEFT JOIN de impuesto; las columnas
// del impuesto son NULL cuando el servicio no tiene (pgx admite punteros como
// destino de Scan para columnas anulables).
func scanService(row pgx.Row) (*entity.ClientService, error) {
	var s entity.ClientService
	var taxID, taxCompanyID, taxName, taxBearer *string
	var taxRate *decimal.Decimal
	var taxCreated, taxUpdated *time.Time
	if err := row.Scan(
		&s.ID, &s.ProfileID, &s.ClientID, &s.ContractID, &s.Description, &s.Price,
		&s.TransactionDate, &s.CreatedAt, &s.UpdatedAt,
		&taxID, &taxCompanyID, &taxName, &taxRate, &taxBearer, &taxCreated, &taxUpdated,
	); err != nil {
		return nil, err
	}
	if taxID != nil {
		tax := entity.Tax{ID: *taxID}
		if taxCompanyID != nil {
			tax.CompanyID = *taxCompanyID
		}
		if taxName != nil {
			tax.Name = *taxName
		}
		if taxRate != nil {
			tax.Rate = *taxRate
		}
		if taxBearer != nil {
			tax.Bearer = *taxBearer
		}
		if taxCreated != nil {
			tax.CreatedAt = *taxCreated
		}
		if taxUpdated != nil {
			tax.UpdatedAt = *taxUpdated
		}
		s.Tax = &tax
	}
	return &s, nil
}
