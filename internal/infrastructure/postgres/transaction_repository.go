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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository construye el adaptador de persistencia para
// transacciones misceláneas.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create persiste una nueva transacción.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, profile_id, branch_id, kind, concept, amount, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		tx.ID, tx.ProfileID, tx.BranchID, tx.Kind, tx.Concept, tx.Amount,
		tx.TransactionDate, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, profile_id, branch_id, kind, concept, amount, transaction_date, created_at, updated_at
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProfileID, &t.BranchID, &t.Kind, &t.Concept, &t.Amount,
		&t.TransactionDate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// ListByProfile lista transacciones de un perfil, con filtro opcional por tipo
// (kind vacío = ambos).
func (r *TransactionRepo) ListByProfile(profileID, kind string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, profile_id, branch_id, kind, concept, amount, transaction_date, created_at, updated_at
		FROM transactions
		WHERE profile_id = $1 AND ($2 = '' OR kind = $2)
		ORDER BY transaction_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(context.Background(), query, profileID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.ProfileID, &t.BranchID, &t.Kind, &t.Concept, &t.Amount,
			&t.TransactionDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
