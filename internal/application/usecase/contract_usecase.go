package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ContractUseCase casos de uso para contratos de renta y sus impuestos.
type ContractUseCase struct {
	contractRepo repository.ContractRepository
	taxRepo      repository.TaxRepository
	profileRepo  repository.ProfileRepository
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	contractRepo repository.ContractRepository,
	taxRepo repository.TaxRepository,
	profileRepo repository.ProfileRepository,
) *ContractUseCase {
	return &ContractUseCase{contractRepo: contractRepo, taxRepo: taxRepo, profileRepo: profileRepo}
}

// Create crea un contrato con sus vínculos de impuestos. Las fechas vacías
// quedan nulas y el motor de cálculo aplica sus valores por defecto.
func (uc *ContractUseCase) Create(in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	profile, err := uc.profileRepo.GetByID(in.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("perfil %s: %w", in.ProfileID, domain.ErrNotFound)
	}

	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}

	taxes, err := uc.taxRepo.GetByIDs(in.TaxIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contract := &entity.Contract{
		ID:          uuid.New().String(),
		ProfileID:   in.ProfileID,
		ClientID:    in.ClientID,
		OfficeID:    in.OfficeID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRate: in.MonthlyRate,
		Taxes:       taxes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.contractRepo.Create(contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// GetByID obtiene un contrato por ID.
func (uc *ContractUseCase) GetByID(id string) (*dto.ContractResponse, error) {
	contract, err := uc.contractRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, nil
	}
	return toContractResponse(contract), nil
}

// Update actualiza un contrato (campos parciales, incluyendo impuestos).
func (uc *ContractUseCase) Update(id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := uc.contractRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, nil
	}
	if in.StartDate != nil {
		start, err := parseOptionalDate(*in.StartDate)
		if err != nil {
			return nil, err
		}
		contract.StartDate = start
	}
	if in.EndDate != nil {
		end, err := parseOptionalDate(*in.EndDate)
		if err != nil {
			return nil, err
		}
		contract.EndDate = end
	}
	if in.MonthlyRate != nil {
		contract.MonthlyRate = *in.MonthlyRate
	}
	if in.TaxIDs != nil {
		taxes, err := uc.taxRepo.GetByIDs(*in.TaxIDs)
		if err != nil {
			return nil, err
		}
		contract.Taxes = taxes
	}
	contract.UpdatedAt = time.Now()
	if err := uc.contractRepo.Update(contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// List lista contratos de un perfil con paginación.
func (uc *ContractUseCase) List(profileID string, limit, offset int) (*dto.ContractListResponse, error) {
	list, err := uc.contractRepo.ListByProfile(profileID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContractResponse(c))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un contrato por ID.
func (uc *ContractUseCase) Delete(id string) error {
	return uc.contractRepo.Delete(id)
}

// parseOptionalDate interpreta YYYY-MM-DD; la cadena vacía devuelve nil.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("fecha %q: %w", s, domain.ErrInvalidInput)
	}
	t = t.UTC()
	return &t, nil
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	taxes := make([]dto.TaxDTO, 0, len(c.Taxes))
	for _, t := range c.Taxes {
		taxes = append(taxes, dto.TaxDTO{ID: t.ID, Name: t.Name, Rate: t.Rate, Bearer: t.Bearer})
	}
	return &dto.ContractResponse{
		ID:          c.ID,
		ProfileID:   c.ProfileID,
		ClientID:    c.ClientID,
		OfficeID:    c.OfficeID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		MonthlyRate: c.MonthlyRate,
		Taxes:       taxes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
