package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// ProfileUseCase casos de uso para libros contables (perfiles).
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// Create crea un perfil nuevo (inactivo por defecto).
func (uc *ProfileUseCase) Create(companyID string, in dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	now := time.Now()
	profile := &entity.Profile{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		IsActive:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// List lista los perfiles de la empresa.
func (uc *ProfileUseCase) List(companyID string) ([]dto.ProfileResponse, error) {
	list, err := uc.profileRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProfileResponse(p))
	}
	return items, nil
}

// Activate marca el perfil como activo y desactiva los demás de la empresa.
func (uc *ProfileUseCase) Activate(ctx context.Context, companyID, profileID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.CompanyID != companyID {
		return nil, fmt.Errorf("perfil %s: %w", profileID, domain.ErrNotFound)
	}
	if err := uc.profileRepo.Activate(ctx, companyID, profileID); err != nil {
		return nil, err
	}
	profile.IsActive = true
	return toProfileResponse(profile), nil
}

// Delete elimina un perfil. El perfil activo no se puede eliminar.
func (uc *ProfileUseCase) Delete(id string) error {
	profile, err := uc.profileRepo.GetByID(id)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrNotFound
	}
	if profile.IsActive {
		return fmt.Errorf("el perfil activo no se puede eliminar: %w", domain.ErrConflict)
	}
	return uc.profileRepo.Delete(id)
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
