package repository

import "github.com/tu-usuario/cowork-pro/internal/domain/entity"

// BranchRepository puerto de persistencia para sedes (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error)
	Delete(id string) error
}

// OfficeRepository puerto de persistencia para oficinas.
type OfficeRepository interface {
	Create(office *entity.Office) error
	GetByID(id string) (*entity.Office, error)
	Update(office *entity.Office) error
	ListByBranch(branchID string, limit, offset int) ([]*entity.Office, error)
	Delete(id string) error
}
