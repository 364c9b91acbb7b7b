package repository

import "github.com/tu-usuario/cowork-pro/internal/domain/entity"

// TaxRepository puerto de persistencia para impuestos configurables.
type TaxRepository interface {
	Create(tax *entity.Tax) error
	GetByID(id string) (*entity.Tax, error)
	// GetByIDs devuelve los impuestos existentes entre los IDs dados
	// (los IDs desconocidos simplemente no aparecen en el resultado).
	GetByIDs(ids []string) ([]entity.Tax, error)
	Update(tax *entity.Tax) error
	ListByCompany(companyID string) ([]*entity.Tax, error)
	Delete(id string) error
}
