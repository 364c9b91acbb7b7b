package repository

import "github.com/tu-usuario/cowork-pro/internal/domain/entity"

// InvestmentRepository puerto de persistencia para inversiones.
// El motor de cálculo solo lee; las escrituras vienen del CRUD administrativo.
type InvestmentRepository interface {
	Create(investment *entity.Investment) error
	GetByID(id string) (*entity.Investment, error)
	Update(investment *entity.Investment) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Investment, error)
	Delete(id string) error
}

// WithdrawalRepository puerto de persistencia para retiros de utilidades.
type WithdrawalRepository interface {
	Create(withdrawal *entity.Withdrawal) error
	GetByID(id string) (*entity.Withdrawal, error)
	// MarkPaid cambia el estado a pagado; idempotencia la decide el caso de uso.
	MarkPaid(id string) error
	ListByProfile(profileID string, limit, offset int) ([]*entity.Withdrawal, error)
	Delete(id string) error
}
