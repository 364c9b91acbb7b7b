package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/report"
	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// ── Stubs de los puertos ──────────────────────────────────────────────────────

type stubFinanceRepo struct {
	contracts       []*entity.Contract
	services        []*entity.ClientService
	incomes         decimal.Decimal
	expenses        decimal.Decimal
	invested        decimal.Decimal
	withdrawals     decimal.Decimal
	newClients      int
	contractsSigned int
	totalOffices    int
	occupiedOffices int
}

func (s *stubFinanceRepo) ListContractsOverlapping(_ context.Context, _ repository.PeriodFilter) ([]*entity.Contract, error) {
	return s.contracts, nil
}

func (s *stubFinanceRepo) ListServicesInPeriod(_ context.Context, _ repository.PeriodFilter) ([]*entity.ClientService, error) {
	return s.services, nil
}

func (s *stubFinanceRepo) SumTransactions(_ context.Context, kind string, _ repository.PeriodFilter) (decimal.Decimal, error) {
	if kind == entity.TransactionIncome {
		return s.incomes, nil
	}
	return s.expenses, nil
}

func (s *stubFinanceRepo) CountOffices(_ context.Context, _ string, _ *string, _, _ time.Time) (int, int, error) {
	return s.totalOffices, s.occupiedOffices, nil
}

func (s *stubFinanceRepo) CountNewClients(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return s.newClients, nil
}

func (s *stubFinanceRepo) CountContractsSigned(_ context.Context, _ repository.PeriodFilter) (int, error) {
	return s.contractsSigned, nil
}

func (s *stubFinanceRepo) SumInvestmentContributions(_ context.Context, _ string, _ time.Time) (decimal.Decimal, error) {
	return s.invested, nil
}

func (s *stubFinanceRepo) SumPaidWithdrawals(_ context.Context, _ string, _ time.Time) (decimal.Decimal, error) {
	return s.withdrawals, nil
}

type stubProfileRepo struct {
	active *entity.Profile
}

func (s *stubProfileRepo) Create(*entity.Profile) error            { return nil }
func (s *stubProfileRepo) GetByID(string) (*entity.Profile, error) { return nil, nil }
func (s *stubProfileRepo) ListByCompany(string) ([]*entity.Profile, error) {
	return nil, nil
}
func (s *stubProfileRepo) GetActive(string) (*entity.Profile, error) {
	return s.active, nil
}
func (s *stubProfileRepo) Activate(context.Context, string, string) error { return nil }
func (s *stubProfileRepo) Delete(string) error                            { return nil }

func yearContract(monthlyRate int64) *entity.Contract {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	return &entity.Contract{
		ID:          "c1",
		StartDate:   &start,
		EndDate:     &end,
		MonthlyRate: decimal.NewFromInt(monthlyRate),
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// TestAnnualReport_Composicion ingresos = contratos + servicios + misceláneos;
// utilidad = ingresos − egresos; ocupación = ocupadas/total × 100.
func TestAnnualReport_Composicion(t *testing.T) {
	finRepo := &stubFinanceRepo{
		contracts: []*entity.Contract{yearContract(1000)},
		services: []*entity.ClientService{
			{ID: "s1", Price: decimal.NewFromInt(500), TransactionDate: time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC)},
		},
		incomes:         decimal.NewFromInt(250),
		expenses:        decimal.NewFromInt(750),
		newClients:      3,
		contractsSigned: 2,
		totalOffices:    10,
		occupiedOffices: 4,
	}
	uc := report.NewSummaryUseCase(finRepo, &stubProfileRepo{})

	got, err := uc.AnnualReport(context.Background(), "empresa-1", dto.AnnualReportRequest{
		Year:      2023,
		ProfileID: "perfil-real",
	})
	require.NoError(t, err)

	assert.Equal(t, "12750", got.Revenue.String())
	assert.Equal(t, "750", got.Expenses.String())
	assert.Equal(t, "12000", got.Profit.String())
	assert.Equal(t, 3, got.NewClients)
	assert.Equal(t, 2, got.ContractsSigned)
	assert.Equal(t, "40", got.OccupancyRate.String())
}

// TestAnnualReport_SinOficinas guardia de división por cero en la ocupación.
func TestAnnualReport_SinOficinas(t *testing.T) {
	uc := report.NewSummaryUseCase(&stubFinanceRepo{}, &stubProfileRepo{})

	got, err := uc.AnnualReport(context.Background(), "empresa-1", dto.AnnualReportRequest{
		Year:      2023,
		ProfileID: "perfil-real",
	})
	require.NoError(t, err)
	assert.True(t, got.OccupancyRate.IsZero(), "sin oficinas la ocupación es 0, nunca NaN")
}

// TestMonthlyReport_Ventana reporte de un mes calendario.
func TestMonthlyReport_Ventana(t *testing.T) {
	finRepo := &stubFinanceRepo{
		incomes:         decimal.NewFromInt(900),
		newClients:      1,
		totalOffices:    8,
		occupiedOffices: 8,
	}
	uc := report.NewSummaryUseCase(finRepo, &stubProfileRepo{})

	got, err := uc.MonthlyReport(context.Background(), "empresa-1", dto.MonthlyReportRequest{
		Year:      2023,
		Month:     6,
		ProfileID: "perfil-real",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, got.Month)
	assert.Equal(t, "900", got.Revenue.String())
	assert.Equal(t, "100", got.OccupancyRate.String())
}

// TestCompanyBalance fórmula del balance histórico:
// (contratos + servicios + otros ingresos + aportes) − (egresos + retiros pagados).
func TestCompanyBalance(t *testing.T) {
	finRepo := &stubFinanceRepo{
		contracts: []*entity.Contract{yearContract(1000)},
		services: []*entity.ClientService{
			{ID: "s1", Price: decimal.NewFromInt(1000), TransactionDate: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
		incomes:     decimal.NewFromInt(500),
		expenses:    decimal.NewFromInt(2000),
		invested:    decimal.NewFromInt(5000),
		withdrawals: decimal.NewFromInt(1000),
	}
	uc := report.NewSummaryUseCase(finRepo, &stubProfileRepo{})

	got, err := uc.CompanyBalance(context.Background(), "empresa-1", dto.BalanceRequest{
		ProfileID: "perfil-real",
		Cutoff:    "2023-12-31",
	})
	require.NoError(t, err)

	// 12000 + 1000 + 500 + 5000 − 2000 − 1000 = 15500
	assert.Equal(t, "12000", got.ContractRevenue.String())
	assert.Equal(t, "15500", got.Balance.String())
}

// TestResolucionPerfilActivo con profile_id vacío se usa el perfil activo de
// la empresa; si no hay perfil activo, el reporte falla con ErrNotFound.
func TestResolucionPerfilActivo(t *testing.T) {
	t.Run("usa el perfil activo", func(t *testing.T) {
		profiles := &stubProfileRepo{active: &entity.Profile{ID: "activo", IsActive: true}}
		uc := report.NewSummaryUseCase(&stubFinanceRepo{}, profiles)

		_, err := uc.AnnualReport(context.Background(), "empresa-1", dto.AnnualReportRequest{Year: 2023})
		require.NoError(t, err)
	})

	t.Run("sin perfil activo falla", func(t *testing.T) {
		uc := report.NewSummaryUseCase(&stubFinanceRepo{}, &stubProfileRepo{})

		_, err := uc.AnnualReport(context.Background(), "empresa-1", dto.AnnualReportRequest{Year: 2023})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
