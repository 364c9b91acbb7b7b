package report

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	appinvestment "github.com/tu-usuario/cowork-pro/internal/application/investment"
	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// StatementPDFGenerator puerto del generador de PDF del estado de cuenta de
// una inversión. La implementación vive en infrastructure/pdf.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		investment *entity.Investment,
		result dto.InvestmentCalculationResult,
		period dto.PeriodDTO,
	) ([]byte, error)
}

// StatementPDFUseCase calcula la participación de una inversión y la entrega
// como estado de cuenta en PDF.
type StatementPDFUseCase struct {
	investmentRepo repository.InvestmentRepository
	calculator     *appinvestment.CalculatorUseCase
	generator      StatementPDFGenerator
}

// NewStatementPDFUseCase construye el caso de uso.
func NewStatementPDFUseCase(
	investmentRepo repository.InvestmentRepository,
	calculator *appinvestment.CalculatorUseCase,
	generator StatementPDFGenerator,
) *StatementPDFUseCase {
	return &StatementPDFUseCase{
		investmentRepo: investmentRepo,
		calculator:     calculator,
		generator:      generator,
	}
}

// Generate devuelve los bytes del PDF del estado de cuenta de la inversión.
func (uc *StatementPDFUseCase) Generate(ctx context.Context, investmentID string) ([]byte, error) {
	inv, err := uc.investmentRepo.GetByID(investmentID)
	if err != nil {
		return nil, fmt.Errorf("estado de cuenta: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	results, err := uc.calculator.Calculate(ctx, []*entity.Investment{inv})
	if err != nil {
		return nil, fmt.Errorf("estado de cuenta: cálculo: %w", err)
	}
	result, ok := results[inv.ID]
	if !ok {
		// Tipo de inversión desconocido: no hay resultado que reportar.
		return nil, domain.ErrInvalidInput
	}

	period := dto.PeriodDTO{
		StartDate: inv.StartingDate.Format("2006-01-02"),
		EndDate:   inv.EndingDate.Format("2006-01-02"),
	}
	return uc.generator.GenerateStatementPDF(ctx, inv, result, period)
}
