// Package report contiene los casos de uso de reportes financieros: métricas
// anuales y mensuales, ocupación y balance histórico de la empresa. Reutiliza
// los agregadores puros de internal/domain/finance sobre ventanas de fechas
// más amplias o más estrechas.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/finance"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// SummaryUseCase genera los reportes de negocio.
//
// Fuente de datos: FinanceRepository (consultas read-only). El perfil llega
// explícito en cada petición; si viene vacío, se resuelve el perfil activo de
// la empresa una sola vez en la entrada y de ahí en adelante todo el cálculo
// trabaja con el profile_id concreto.
type SummaryUseCase struct {
	financeRepo repository.FinanceRepository
	profileRepo repository.ProfileRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(financeRepo repository.FinanceRepository, profileRepo repository.ProfileRepository) *SummaryUseCase {
	return &SummaryUseCase{financeRepo: financeRepo, profileRepo: profileRepo}
}

// AnnualReport métricas del año calendario: ingresos (contratos prorrateados +
// servicios + misceláneos), egresos, utilidad, clientes nuevos, contratos
// firmados y tasa de ocupación.
//
// A diferencia del cálculo de participación de inversionistas, aquí NO se
// excluyen contratos preexistentes: el reporte general mide la actividad
// completa del período.
func (uc *SummaryUseCase) AnnualReport(
	ctx context.Context,
	companyID string,
	req dto.AnnualReportRequest,
) (*dto.AnnualReportDTO, error) {
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}
	profileID, err := uc.resolveProfile(companyID, req.ProfileID)
	if err != nil {
		return nil, err
	}

	from := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	branchID := optional(req.BranchID)
	f := repository.PeriodFilter{ProfileID: profileID, BranchID: branchID, From: from, To: to}

	rev, err := uc.revenueForPeriod(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte anual: %w", err)
	}
	expenses, err := uc.financeRepo.SumTransactions(ctx, entity.TransactionExpense, f)
	if err != nil {
		return nil, fmt.Errorf("reporte anual: egresos: %w", err)
	}
	counts, err := uc.countsForPeriod(ctx, companyID, f)
	if err != nil {
		return nil, fmt.Errorf("reporte anual: %w", err)
	}

	return &dto.AnnualReportDTO{
		Year:            req.Year,
		Revenue:         rev,
		Expenses:        expenses,
		Profit:          rev.Sub(expenses),
		NewClients:      counts.newClients,
		ContractsSigned: counts.contractsSigned,
		OccupancyRate:   finance.OccupancyRate(counts.occupiedOffices, counts.totalOffices),
	}, nil
}

// MonthlyReport métricas de un mes calendario.
func (uc *SummaryUseCase) MonthlyReport(
	ctx context.Context,
	companyID string,
	req dto.MonthlyReportRequest,
) (*dto.MonthlyReportDTO, error) {
	now := time.Now()
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if req.Month < 1 || req.Month > 12 {
		req.Month = int(now.Month())
	}
	profileID, err := uc.resolveProfile(companyID, req.ProfileID)
	if err != nil {
		return nil, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	f := repository.PeriodFilter{
		ProfileID: profileID,
		BranchID:  optional(req.BranchID),
		ClientID:  optional(req.ClientID),
		From:      from,
		To:        to,
	}

	rev, err := uc.revenueForPeriod(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: %w", err)
	}
	counts, err := uc.countsForPeriod(ctx, companyID, f)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: %w", err)
	}

	return &dto.MonthlyReportDTO{
		Year:            req.Year,
		Month:           req.Month,
		Revenue:         rev,
		NewClients:      counts.newClients,
		ContractsSigned: counts.contractsSigned,
		OccupancyRate:   finance.OccupancyRate(counts.occupiedOffices, counts.totalOffices),
	}, nil
}

// CompanyBalance balance histórico de la empresa a la fecha de corte:
// (servicios + contratos + otros ingresos + aportes de inversión) −
// (egresos + retiros pagados). Corte vacío = hoy.
func (uc *SummaryUseCase) CompanyBalance(
	ctx context.Context,
	companyID string,
	req dto.BalanceRequest,
) (*dto.CompanyBalanceDTO, error) {
	profileID, err := uc.resolveProfile(companyID, req.ProfileID)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now()
	if req.Cutoff != "" {
		cutoff, err = time.Parse("2006-01-02", req.Cutoff)
		if err != nil {
			return nil, fmt.Errorf("fecha de corte inválida %q: %w", req.Cutoff, err)
		}
	}

	f := repository.PeriodFilter{
		ProfileID: profileID,
		From:      time.Unix(0, 0).UTC(),
		To:        cutoff,
	}

	contracts, err := uc.financeRepo.ListContractsOverlapping(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("balance: contratos: %w", err)
	}
	services, err := uc.financeRepo.ListServicesInPeriod(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("balance: servicios: %w", err)
	}
	otherIncome, err := uc.financeRepo.SumTransactions(ctx, entity.TransactionIncome, f)
	if err != nil {
		return nil, fmt.Errorf("balance: ingresos: %w", err)
	}
	expenses, err := uc.financeRepo.SumTransactions(ctx, entity.TransactionExpense, f)
	if err != nil {
		return nil, fmt.Errorf("balance: egresos: %w", err)
	}
	invested, err := uc.financeRepo.SumInvestmentContributions(ctx, profileID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("balance: aportes: %w", err)
	}
	withdrawals, err := uc.financeRepo.SumPaidWithdrawals(ctx, profileID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("balance: retiros: %w", err)
	}

	contractRevenue := finance.ContractRevenueForPeriod(contracts, f.From, f.To, finance.ContractRevenueOptions{Now: cutoff})
	serviceRevenue := finance.ServiceRevenue(services, true)

	balance := contractRevenue.Add(serviceRevenue).Add(otherIncome).Add(invested).
		Sub(expenses).Sub(withdrawals)

	return &dto.CompanyBalanceDTO{
		Cutoff:          cutoff.Format("2006-01-02"),
		ContractRevenue: contractRevenue,
		ServiceRevenue:  serviceRevenue,
		OtherIncome:     otherIncome,
		InvestedCapital: invested,
		TotalExpenses:   expenses,
		PaidWithdrawals: withdrawals,
		Balance:         balance,
	}, nil
}

// revenueForPeriod ingreso total del período: contratos prorrateados +
// servicios (netos de impuestos de cargo empresa) + ingresos misceláneos.
// Las tres lecturas son independientes y se resuelven en paralelo.
func (uc *SummaryUseCase) revenueForPeriod(ctx context.Context, f repository.PeriodFilter) (decimal.Decimal, error) {
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

	contracts := <-contractsCh
	services := <-servicesCh
	incomes := <-incomesCh

	if contracts.err != nil {
		return decimal.Zero, fmt.Errorf("contratos: %w", contracts.err)
	}
	if services.err != nil {
		return decimal.Zero, fmt.Errorf("servicios: %w", services.err)
	}
	if incomes.err != nil {
		return decimal.Zero, fmt.Errorf("ingresos: %w", incomes.err)
	}

	contractRevenue := finance.ContractRevenueForPeriod(contracts.rows, f.From, f.To, finance.ContractRevenueOptions{})
	serviceRevenue := finance.ServiceRevenue(services.rows, true)
	return contractRevenue.Add(serviceRevenue).Add(incomes.sum), nil
}

// periodCounts conteos de actividad del período.
type periodCounts struct {
	newClients      int
	contractsSigned int
	totalOffices    int
	occupiedOffices int
}

func (uc *SummaryUseCase) countsForPeriod(ctx context.Context, companyID string, f repository.PeriodFilter) (*periodCounts, error) {
	newClients, err := uc.financeRepo.CountNewClients(ctx, companyID, f.From, f.To)
	if err != nil {
		return nil, fmt.Errorf("clientes nuevos: %w", err)
	}
	signed, err := uc.financeRepo.CountContractsSigned(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("contratos firmados: %w", err)
	}
	total, occupied, err := uc.financeRepo.CountOffices(ctx, companyID, f.BranchID, f.From, f.To)
	if err != nil {
		return nil, fmt.Errorf("oficinas: %w", err)
	}
	return &periodCounts{
		newClients:      newClients,
		contractsSigned: signed,
		totalOffices:    total,
		occupiedOffices: occupied,
	}, nil
}

// resolveProfile devuelve el profileID explícito, o el perfil activo de la
// empresa cuando viene vacío (la resolución ocurre una sola vez aquí, en la
// frontera; el núcleo de cálculo nunca depende del flag de activación).
func (uc *SummaryUseCase) resolveProfile(companyID, profileID string) (string, error) {
	if profileID != "" {
		return profileID, nil
	}
	active, err := uc.profileRepo.GetActive(companyID)
	if err != nil {
		return "", fmt.Errorf("perfil activo: %w", err)
	}
	if active == nil {
		return "", domain.ErrNotFound
	}
	return active.ID, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
