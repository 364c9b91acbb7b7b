package repository

import "github.com/tu-usuario/cowork-pro/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
