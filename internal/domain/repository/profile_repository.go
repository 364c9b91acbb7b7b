package repository

import (
	"context"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
)

// ProfileRepository puerto de persistencia para libros contables (perfiles).
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	ListByCompany(companyID string) ([]*entity.Profile, error)
	// GetActive devuelve el perfil activo de la empresa, o nil si no hay.
	GetActive(companyID string) (*entity.Profile, error)
	// Activate marca el perfil como activo y desactiva los demás de la misma
	// empresa, en una sola transacción.
	Activate(ctx context.Context, companyID, profileID string) error
	Delete(id string) error
}
