package repository

import "github.com/tu-usuario/cowork-pro/internal/domain/entity"

// ContractRepository puerto de persistencia para contratos de renta.
// Create y Update mantienen también los vínculos contract_taxes.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	Update(contract *entity.Contract) error
	ListByProfile(profileID string, limit, offset int) ([]*entity.Contract, error)
	Delete(id string) error
}

// ClientServiceRepository puerto de persistencia para servicios puntuales.
type ClientServiceRepository interface {
	Create(service *entity.ClientService) error
	GetByID(id string) (*entity.ClientService, error)
	ListByProfile(profileID string, limit, offset int) ([]*entity.ClientService, error)
	Delete(id string) error
}
