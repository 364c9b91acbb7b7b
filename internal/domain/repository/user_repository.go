package repository

import "github.com/tu-usuario/cowork-pro/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
}

// CompanyRepository puerto de persistencia para empresas (tenants).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
