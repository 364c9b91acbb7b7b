package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/investment"
	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// InvestmentUseCase CRUD de inversiones más el disparo del cálculo de
// participación para toda la empresa.
type InvestmentUseCase struct {
	investmentRepo repository.InvestmentRepository
	calculator     *investment.CalculatorUseCase
}

// NewInvestmentUseCase construye el caso de uso.
func NewInvestmentUseCase(
	investmentRepo repository.InvestmentRepository,
	calculator *investment.CalculatorUseCase,
) *InvestmentUseCase {
	return &InvestmentUseCase{investmentRepo: investmentRepo, calculator: calculator}
}

// Create crea una inversión nueva.
func (uc *InvestmentUseCase) Create(companyID string, in dto.CreateInvestmentRequest) (*dto.InvestmentResponse, error) {
	if in.Type != entity.InvestmentTypeComprehensive && in.Type != entity.InvestmentTypeContractual {
		return nil, fmt.Errorf("tipo de inversión %q: %w", in.Type, domain.ErrInvalidInput)
	}
	start, err := parseRequiredDate(in.StartingDate)
	if err != nil {
		return nil, err
	}
	end, err := parseRequiredDate(in.EndingDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inv := &entity.Investment{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ProfileID:    in.ProfileID,
		BranchID:     in.BranchID,
		InvestorName: in.InvestorName,
		Amount:       in.Amount,
		Percentage:   in.Percentage,
		StartingDate: start,
		EndingDate:   end,
		Type:         in.Type,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.investmentRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvestmentResponse(inv), nil
}

// GetByID obtiene una inversión por ID.
func (uc *InvestmentUseCase) GetByID(id string) (*dto.InvestmentResponse, error) {
	inv, err := uc.investmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInvestmentResponse(inv), nil
}

// Update actualiza una inversión (campos parciales).
func (uc *InvestmentUseCase) Update(id string, in dto.UpdateInvestmentRequest) (*dto.InvestmentResponse, error) {
	inv, err := uc.investmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	if in.InvestorName != nil {
		inv.InvestorName = *in.InvestorName
	}
	if in.Percentage != nil {
		inv.Percentage = *in.Percentage
	}
	if in.StartingDate != nil {
		start, err := parseRequiredDate(*in.StartingDate)
		if err != nil {
			return nil, err
		}
		inv.StartingDate = start
	}
	if in.EndingDate != nil {
		end, err := parseRequiredDate(*in.EndingDate)
		if err != nil {
			return nil, err
		}
		inv.EndingDate = end
	}
	if in.Type != nil {
		if *in.Type != entity.InvestmentTypeComprehensive && *in.Type != entity.InvestmentTypeContractual {
			return nil, fmt.Errorf("tipo de inversión %q: %w", *in.Type, domain.ErrInvalidInput)
		}
		inv.Type = *in.Type
	}
	inv.UpdatedAt = time.Now()
	if err := uc.investmentRepo.Update(inv); err != nil {
		return nil, err
	}
	return toInvestmentResponse(inv), nil
}

// List lista inversiones de la empresa con paginación.
func (uc *InvestmentUseCase) List(companyID string, limit, offset int) (*dto.InvestmentListResponse, error) {
	list, err := uc.investmentRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvestmentResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvestmentResponse(inv))
	}
	return &dto.InvestmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una inversión por ID.
func (uc *InvestmentUseCase) Delete(id string) error {
	return uc.investmentRepo.Delete(id)
}

// Calculations ejecuta el cálculo de participación para todas las inversiones
// de la empresa y devuelve el mapa inversión → resultado.
func (uc *InvestmentUseCase) Calculations(ctx context.Context, companyID string) (*dto.InvestmentCalculationsResponse, error) {
	// Sin límite: el cálculo considera todas las inversiones registradas.
	list, err := uc.investmentRepo.ListByCompany(companyID, 0, 0)
	if err != nil {
		return nil, err
	}
	results, err := uc.calculator.Calculate(ctx, list)
	if err != nil {
		return nil, err
	}
	return &dto.InvestmentCalculationsResponse{Results: results}, nil
}

// Calculation ejecuta el cálculo de participación para una sola inversión.
// Devuelve ErrNotFound si la inversión no existe y ErrInvalidInput si su tipo
// es desconocido para el motor.
func (uc *InvestmentUseCase) Calculation(ctx context.Context, id string) (*dto.InvestmentCalculationResult, error) {
	inv, err := uc.investmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	results, err := uc.calculator.Calculate(ctx, []*entity.Investment{inv})
	if err != nil {
		return nil, err
	}
	result, ok := results[inv.ID]
	if !ok {
		return nil, fmt.Errorf("tipo de inversión %q: %w", inv.Type, domain.ErrInvalidInput)
	}
	return &result, nil
}

func toInvestmentResponse(i *entity.Investment) *dto.InvestmentResponse {
	if i == nil {
		return nil
	}
	return &dto.InvestmentResponse{
		ID:           i.ID,
		CompanyID:    i.CompanyID,
		ProfileID:    i.ProfileID,
		BranchID:     i.BranchID,
		InvestorName: i.InvestorName,
		Amount:       i.Amount,
		Percentage:   i.Percentage,
		StartingDate: i.StartingDate,
		EndingDate:   i.EndingDate,
		Type:         i.Type,
		CreatedAt:    i.CreatedAt,
	}
}
