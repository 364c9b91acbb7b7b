// Package investment contiene el motor de cálculo de participación de
// inversionistas: dos estrategias intercambiables (integral y contractual)
// despachadas por un orquestador que agrupa las inversiones por tipo.
package investment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/finance"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
	"github.com/tu-usuario/cowork-pro/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

// CalculatorUseCase orquesta el cálculo de participación para un lote de
// inversiones. Estado: ninguno; función pura de las entradas más lecturas
// contra FinanceRepository.
type CalculatorUseCase struct {
	financeRepo repository.FinanceRepository
	log         *logger.Logger
}

// NewCalculatorUseCase construye el caso de uso.
func NewCalculatorUseCase(financeRepo repository.FinanceRepository, log *logger.Logger) *CalculatorUseCase {
	return &CalculatorUseCase{financeRepo: financeRepo, log: log}
}

// Calculate particiona las inversiones por tipo, despacha cada partición a su
// estrategia y fusiona los resultados parciales en un solo mapa por ID.
//
// Tipos desconocidos no producen entrada en el mapa; se registran con warn en
// lugar de descartarse en silencio, para que el dato defectuoso sea visible.
func (uc *CalculatorUseCase) Calculate(
	ctx context.Context,
	investments []*entity.Investment,
) (map[string]dto.InvestmentCalculationResult, error) {
	groups := make(map[string][]*entity.Investment)
	for _, inv := range investments {
		groups[inv.Type] = append(groups[inv.Type], inv)
	}

	results := make(map[string]dto.InvestmentCalculationResult, len(investments))
	for typ, group := range groups {
		switch typ {
		case entity.InvestmentTypeComprehensive:
			if err := uc.calculateComprehensive(ctx, group, results); err != nil {
				return nil, err
			}
		case entity.InvestmentTypeContractual:
			if err := uc.calculateContractual(ctx, group, results); err != nil {
				return nil, err
			}
		default:
			for _, inv := range group {
				uc.log.Warn().
					Str("investment_id", inv.ID).
					Str("type", typ).
					Msg("tipo de inversión desconocido, omitido del cálculo")
			}
		}
	}
	return results, nil
}

// calculateComprehensive estrategia integral: la base de utilidad es todo el
// flujo del período (contratos prorrateados + servicios + otros ingresos −
// egresos) dentro del perfil y la sede de la inversión.
func (uc *CalculatorUseCase) calculateComprehensive(
	ctx context.Context,
	group []*entity.Investment,
	out map[string]dto.InvestmentCalculationResult,
) error {
	for _, inv := range group {
		// Sin perfil no hay actividad financiera atribuible: resultado cero.
		if inv.ProfileID == nil {
			out[inv.ID] = zeroResult()
			continue
		}
		f := repository.PeriodFilter{
			ProfileID: *inv.ProfileID,
			BranchID:  inv.BranchID,
			From:      inv.StartingDate,
			To:        inv.EndingDate,
		}

		reads, err := uc.fetchPeriodReads(ctx, f)
		if err != nil {
			return fmt.Errorf("inversión %s: %w", inv.ID, err)
		}

		// El ingreso por contratos excluye los preexistentes: lo generado por
		// contratos anteriores a la entrada del inversionista no le corresponde.
		contractRevenue := finance.ContractRevenueForPeriod(
			reads.contracts, f.From, f.To,
			finance.ContractRevenueOptions{ExcludePreExisting: true},
		)
		serviceRevenue := finance.ServiceRevenue(reads.services, true)

		totalIncome := reads.incomes.Add(serviceRevenue).Add(contractRevenue)
		netProfit := totalIncome.Sub(reads.expenses)

		out[inv.ID] = uc.buildResult(inv, reads.contracts, netProfit, dto.InvestmentCalculationDetails{
			IncomeAmount:    reads.incomes,
			ServiceRevenue:  serviceRevenue,
			ContractRevenue: contractRevenue,
			TotalIncome:     totalIncome,
			TotalExpense:    reads.expenses,
			TotalNetProfit:  netProfit,
		})
	}
	return nil
}

// calculateContractual estrategia contractual: la base de utilidad es
// únicamente el ingreso por contratos del período (servicios, otros ingresos
// y egresos quedan fuera).
func (uc *CalculatorUseCase) calculateContractual(
	ctx context.Context,
	group []*entity.Investment,
	out map[string]dto.InvestmentCalculationResult,
) error {
	for _, inv := range group {
		if inv.ProfileID == nil {
			out[inv.ID] = zeroResult()
			continue
		}
		f := repository.PeriodFilter{
			ProfileID: *inv.ProfileID,
			BranchID:  inv.BranchID,
			From:      inv.StartingDate,
			To:        inv.EndingDate,
		}

		contracts, err := uc.financeRepo.ListContractsOverlapping(ctx, f)
		if err != nil {
			return fmt.Errorf("inversión %s: contratos: %w", inv.ID, err)
		}

		contractRevenue := finance.ContractRevenueForPeriod(
			contracts, f.From, f.To,
			finance.ContractRevenueOptions{ExcludePreExisting: true},
		)

		out[inv.ID] = uc.buildResult(inv, contracts, contractRevenue, dto.InvestmentCalculationDetails{
			ContractRevenue: contractRevenue,
			TotalIncome:     contractRevenue,
			TotalNetProfit:  contractRevenue,
		})
	}
	return nil
}

// buildResult aplica el tramo común de ambas estrategias: porcentaje sobre la
// utilidad neta, impuestos deduplicados del mismo conjunto de contratos
// (excluyendo los de cargo empresa, que ya redujeron la base) y participación
// neta final.
func (uc *CalculatorUseCase) buildResult(
	inv *entity.Investment,
	contracts []*entity.Contract,
	netProfit decimal.Decimal,
	details dto.InvestmentCalculationDetails,
) dto.InvestmentCalculationResult {
	gross := netProfit.Mul(inv.Percentage).Div(hundred)
	applied, totalTax := finance.ApplyShareTaxes(gross, finance.DedupeShareTaxes(contracts))
	netShare := gross.Sub(totalTax)

	details.GrossProfitShare = gross
	details.TotalTaxAmount = totalTax
	details.AppliedTaxes = toAppliedTaxDTOs(applied)
	details.NetProfitShare = netShare

	return dto.InvestmentCalculationResult{
		BranchNetProfitSelectedPeriod: netProfit,
		YourProfitShareSelectedPeriod: netShare,
		Details:                       details,
	}
}

// periodReads lecturas independientes de un período, resueltas en paralelo.
type periodReads struct {
	contracts []*entity.Contract
	services  []*entity.ClientService
	incomes   decimal.Decimal
	expenses  decimal.Decimal
}

// fetchPeriodReads lanza las cuatro consultas del período en goroutines (son
// lecturas independientes, el repositorio soporta lecturas concurrentes) y
// espera todas. El primer error aborta el cálculo completo: sin datos no hay
// cifra significativa que producir.
func (uc *CalculatorUseCase) fetchPeriodReads(ctx context.Context, f repository.PeriodFilter) (*periodReads, error) {
	type contractsResult struct {
		rows []*entity.Contract
		err  error
	}
	type servicesResult struct {
		rows []*entity.ClientService
		err  error
	}
	type sumResult struct {
		sum decimal.Decimal
		err error
	}

	contractsCh := make(chan contractsResult, 1)
	servicesCh := make(chan servicesResult, 1)
	incomesCh := make(chan sumResult, 1)
	expensesCh := make(chan sumResult, 1)

	go func() {
		rows, err := uc.financeRepo.ListContractsOverlapping(ctx, f)
		contractsCh <- contractsResult{rows, err}
	}()
	go func() {
		rows, err := uc.financeRepo.ListServicesInPeriod(ctx, f)
		servicesCh <- servicesResult{rows, err}
	}()
	go func() {
		sum, err := uc.financeRepo.SumTransactions(ctx, entity.TransactionIncome, f)
		incomesCh <- sumResult{sum, err}
	}()
	go func() {
		sum, err := uc.financeRepo.SumTransactions(ctx, entity.TransactionExpense, f)
		expensesCh <- sumResult{sum, err}
	}()

	contracts := <-contractsCh
	services := <-servicesCh
	incomes := <-incomesCh
	expenses := <-expensesCh

	if contracts.err != nil {
		return nil, fmt.Errorf("contratos: %w", contracts.err)
	}
	if services.err != nil {
		return nil, fmt.Errorf("servicios: %w", services.err)
	}
	if incomes.err != nil {
		return nil, fmt.Errorf("ingresos: %w", incomes.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("egresos: %w", expenses.err)
	}

	return &periodReads{
		contracts: contracts.rows,
		services:  services.rows,
		incomes:   incomes.sum,
		expenses:  expenses.sum,
	}, nil
}

func toAppliedTaxDTOs(applied []finance.AppliedTax) []dto.AppliedTaxDTO {
	dtos := make([]dto.AppliedTaxDTO, 0, len(applied))
	for _, a := range applied {
		dtos = append(dtos, dto.AppliedTaxDTO{Name: a.Name, Rate: a.Rate, Amount: a.Amount})
	}
	return dtos
}

// zeroResult resultado explícito todo-en-cero para inversiones sin perfil.
func zeroResult() dto.InvestmentCalculationResult {
	return dto.InvestmentCalculationResult{
		BranchNetProfitSelectedPeriod: decimal.Zero,
		YourProfitShareSelectedPeriod: decimal.Zero,
		Details: dto.InvestmentCalculationDetails{
			IncomeAmount:     decimal.Zero,
			ServiceRevenue:   decimal.Zero,
			ContractRevenue:  decimal.Zero,
			TotalIncome:      decimal.Zero,
			TotalExpense:     decimal.Zero,
			TotalNetProfit:   decimal.Zero,
			GrossProfitShare: decimal.Zero,
			TotalTaxAmount:   decimal.Zero,
			AppliedTaxes:     []dto.AppliedTaxDTO{},
			NetProfitShare:   decimal.Zero,
		},
	}
}
