package repository

import "github.com/tu-usuario/cowork-pro/internal/domain/entity"

// TransactionRepository puerto de persistencia para ingresos/egresos
// misceláneos.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// ListByProfile filtra opcionalmente por tipo (kind vacío = ambos).
	ListByProfile(profileID, kind string, limit, offset int) ([]*entity.Transaction, error)
	Delete(id string) error
}
