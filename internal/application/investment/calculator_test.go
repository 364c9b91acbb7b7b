package investment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinvestment "github.com/tu-usuario/cowork-pro/internal/application/investment"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
	"github.com/tu-usuario/cowork-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub del puerto FinanceRepository: devuelve datos fijos sin tocar la DB.
// Las cuatro lecturas del período se disparan en goroutines, por eso el stub
// es de solo lectura tras su construcción.
// ──────────────────────────────────────────────────────────────────────────────

type stubFinanceRepo struct {
	contracts []*entity.Contract
	services  []*entity.ClientService
	incomes   decimal.Decimal
	expenses  decimal.Decimal
	err       error
}

func (s *stubFinanceRepo) ListContractsOverlapping(_ context.Context, _ repository.PeriodFilter) ([]*entity.Contract, error) {
	return s.contracts, s.err
}

func (s *stubFinanceRepo) ListServicesInPeriod(_ context.Context, _ repository.PeriodFilter) ([]*entity.ClientService, error) {
	return s.services, s.err
}

func (s *stubFinanceRepo) SumTransactions(_ context.Context, kind string, _ repository.PeriodFilter) (decimal.Decimal, error) {
	if kind == entity.TransactionIncome {
		return s.incomes, s.err
	}
	return s.expenses, s.err
}

func (s *stubFinanceRepo) CountOffices(_ context.Context, _ string, _ *string, _, _ time.Time) (int, int, error) {
	return 0, 0, s.err
}

func (s *stubFinanceRepo) CountNewClients(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return 0, s.err
}

func (s *stubFinanceRepo) CountContractsSigned(_ context.Context, _ repository.PeriodFilter) (int, error) {
	return 0, s.err
}

func (s *stubFinanceRepo) SumInvestmentContributions(_ context.Context, _ string, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, s.err
}

func (s *stubFinanceRepo) SumPaidWithdrawals(_ context.Context, _ string, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, s.err
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func yearContract(id string, monthlyRate int64, taxes ...entity.Tax) *entity.Contract {
	start := date(2023, time.January, 1)
	end := date(2023, time.December, 31)
	return &entity.Contract{
		ID:          id,
		StartDate:   &start,
		EndDate:     &end,
		MonthlyRate: decimal.NewFromInt(monthlyRate),
		Taxes:       taxes,
	}
}

func yearInvestment(id, typ string, percentage int64) *entity.Investment {
	return &entity.Investment{
		ID:           id,
		ProfileID:    strPtr("perfil-real"),
		InvestorName: "Inversionista de prueba",
		Percentage:   decimal.NewFromInt(percentage),
		StartingDate: date(2023, time.January, 1),
		EndingDate:   date(2023, time.December, 31),
		Type:         typ,
	}
}

var ivaCliente = entity.Tax{
	ID:     "iva",
	Name:   "IVA",
	Rate:   decimal.NewFromInt(10),
	Bearer: entity.TaxBearerClient,
}

// ──────────────────────────────────────────────────────────────────────────────
// TestCalculate_Integral vector de referencia de la estrategia integral:
//
//	contratos 12000 + servicios 1000 + otros ingresos 500 = 13500
//	egresos 1000 → utilidad neta 12500
//	participación 50% → bruta 6250
//	IVA cliente 10% → impuesto 625 → neta 5625
// ──────────────────────────────────────────────────────────────────────────────
func TestCalculate_Integral(t *testing.T) {
	repo := &stubFinanceRepo{
		contracts: []*entity.Contract{yearContract("c1", 1000, ivaCliente)},
		services: []*entity.ClientService{
			{ID: "s1", Price: decimal.NewFromInt(1000), TransactionDate: date(2023, time.June, 1)},
		},
		incomes:  decimal.NewFromInt(500),
		expenses: decimal.NewFromInt(1000),
	}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	results, err := uc.Calculate(context.Background(), []*entity.Investment{
		yearInvestment("inv1", entity.InvestmentTypeComprehensive, 50),
	})
	require.NoError(t, err)
	require.Contains(t, results, "inv1")

	r := results["inv1"]
	assert.Equal(t, "12500", r.BranchNetProfitSelectedPeriod.String())
	assert.Equal(t, "5625", r.YourProfitShareSelectedPeriod.String())
	assert.Equal(t, "12000", r.Details.ContractRevenue.String())
	assert.Equal(t, "1000", r.Details.ServiceRevenue.String())
	assert.Equal(t, "500", r.Details.IncomeAmount.String())
	assert.Equal(t, "13500", r.Details.TotalIncome.String())
	assert.Equal(t, "6250", r.Details.GrossProfitShare.String())
	assert.Equal(t, "625", r.Details.TotalTaxAmount.String())
	assert.Equal(t, "5625", r.Details.NetProfitShare.String())
	require.Len(t, r.Details.AppliedTaxes, 1)
	assert.Equal(t, "IVA", r.Details.AppliedTaxes[0].Name)
}

// TestCalculate_ImpuestoDeduplicado dos contratos compartiendo la fila de
// impuesto idéntica producen exactamente una entrada aplicada y un descuento.
func TestCalculate_ImpuestoDeduplicado(t *testing.T) {
	repo := &stubFinanceRepo{
		contracts: []*entity.Contract{
			yearContract("c1", 1000, ivaCliente),
			yearContract("c2", 500, ivaCliente),
		},
		incomes:  decimal.Zero,
		expenses: decimal.Zero,
	}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	results, err := uc.Calculate(context.Background(), []*entity.Investment{
		yearInvestment("inv1", entity.InvestmentTypeComprehensive, 100),
	})
	require.NoError(t, err)

	r := results["inv1"]
	// 12000 + 6000 = 18000 de contratos, participación 100%
	assert.Equal(t, "18000", r.Details.GrossProfitShare.String())
	require.Len(t, r.Details.AppliedTaxes, 1, "el impuesto compartido debe aplicarse una sola vez")
	assert.Equal(t, "1800", r.Details.TotalTaxAmount.String())
}

// TestCalculate_SinPerfil inversión sin perfil: resultado explícito todo-cero,
// sin importar los demás campos.
func TestCalculate_SinPerfil(t *testing.T) {
	repo := &stubFinanceRepo{
		contracts: []*entity.Contract{yearContract("c1", 9999)},
		incomes:   decimal.NewFromInt(5000),
		expenses:  decimal.Zero,
	}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	inv := yearInvestment("huerfana", entity.InvestmentTypeComprehensive, 50)
	inv.ProfileID = nil

	results, err := uc.Calculate(context.Background(), []*entity.Investment{inv})
	require.NoError(t, err)
	require.Contains(t, results, "huerfana")

	r := results["huerfana"]
	assert.True(t, r.BranchNetProfitSelectedPeriod.IsZero())
	assert.True(t, r.YourProfitShareSelectedPeriod.IsZero())
	assert.Empty(t, r.Details.AppliedTaxes)
}

// TestCalculate_TipoDesconocido un tipo no reconocido no produce entrada en el
// mapa (queda registrado con warn), sin afectar a las demás inversiones.
func TestCalculate_TipoDesconocido(t *testing.T) {
	repo := &stubFinanceRepo{incomes: decimal.Zero, expenses: decimal.Zero}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	rara := yearInvestment("rara", "especulativa", 50)
	normal := yearInvestment("normal", entity.InvestmentTypeComprehensive, 50)

	results, err := uc.Calculate(context.Background(), []*entity.Investment{rara, normal})
	require.NoError(t, err)
	assert.NotContains(t, results, "rara")
	assert.Contains(t, results, "normal")
}

// TestCalculate_Contractual la estrategia contractual ignora servicios, otros
// ingresos y egresos: la base es solo el ingreso por contratos.
func TestCalculate_Contractual(t *testing.T) {
	repo := &stubFinanceRepo{
		contracts: []*entity.Contract{yearContract("c1", 1000)},
		services: []*entity.ClientService{
			{ID: "s1", Price: decimal.NewFromInt(7777), TransactionDate: date(2023, time.June, 1)},
		},
		incomes:  decimal.NewFromInt(5000),
		expenses: decimal.NewFromInt(3000),
	}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	results, err := uc.Calculate(context.Background(), []*entity.Investment{
		yearInvestment("inv1", entity.InvestmentTypeContractual, 50),
	})
	require.NoError(t, err)

	r := results["inv1"]
	assert.Equal(t, "12000", r.BranchNetProfitSelectedPeriod.String())
	assert.Equal(t, "6000", r.YourProfitShareSelectedPeriod.String())
	assert.True(t, r.Details.ServiceRevenue.IsZero())
	assert.True(t, r.Details.IncomeAmount.IsZero())
	assert.True(t, r.Details.TotalExpense.IsZero())
}

// TestCalculate_ContratoPreexistente un contrato iniciado antes de la entrada
// del inversionista no aporta ingreso a su participación aunque se superponga
// con el período consultado.
func TestCalculate_ContratoPreexistente(t *testing.T) {
	oldStart := date(2022, time.June, 1)
	oldEnd := date(2023, time.June, 1)
	repo := &stubFinanceRepo{
		contracts: []*entity.Contract{{
			ID:          "viejo",
			StartDate:   &oldStart,
			EndDate:     &oldEnd,
			MonthlyRate: decimal.NewFromInt(2000),
		}},
		incomes:  decimal.Zero,
		expenses: decimal.Zero,
	}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	results, err := uc.Calculate(context.Background(), []*entity.Investment{
		yearInvestment("inv1", entity.InvestmentTypeComprehensive, 50),
	})
	require.NoError(t, err)
	assert.True(t, results["inv1"].BranchNetProfitSelectedPeriod.IsZero())
}

// TestCalculate_PerdidaConImpuesto con utilidad neta negativa el impuesto se
// aplica igual (monto negativo, efectivamente un reembolso) — comportamiento
// vigente a la espera de definición de producto.
func TestCalculate_PerdidaConImpuesto(t *testing.T) {
	repo := &stubFinanceRepo{
		contracts: []*entity.Contract{yearContract("c1", 1000, ivaCliente)},
		incomes:   decimal.Zero,
		expenses:  decimal.NewFromInt(20000),
	}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	results, err := uc.Calculate(context.Background(), []*entity.Investment{
		yearInvestment("inv1", entity.InvestmentTypeComprehensive, 50),
	})
	require.NoError(t, err)

	r := results["inv1"]
	// 12000 − 20000 = −8000; 50% → −4000; IVA 10% → −400; neta −3600
	assert.Equal(t, "-8000", r.BranchNetProfitSelectedPeriod.String())
	assert.Equal(t, "-400", r.Details.TotalTaxAmount.String())
	assert.Equal(t, "-3600", r.Details.NetProfitShare.String())
}

// TestCalculate_ErrorDeRepositorio un fallo de I/O del colaborador es fatal
// para la invocación: se propaga, no se recupera con ceros.
func TestCalculate_ErrorDeRepositorio(t *testing.T) {
	repo := &stubFinanceRepo{err: errors.New("conexión perdida")}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())

	_, err := uc.Calculate(context.Background(), []*entity.Investment{
		yearInvestment("inv1", entity.InvestmentTypeComprehensive, 50),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "conexión perdida")
}

// TestCalculate_Idempotente el mismo lote produce el mismo resultado en
// invocaciones repetidas (sin estado entre llamadas).
func TestCalculate_Idempotente(t *testing.T) {
	repo := &stubFinanceRepo{
		contracts: []*entity.Contract{yearContract("c1", 1234, ivaCliente)},
		incomes:   decimal.NewFromInt(100),
		expenses:  decimal.NewFromInt(50),
	}
	uc := appinvestment.NewCalculatorUseCase(repo, testLogger())
	batch := []*entity.Investment{yearInvestment("inv1", entity.InvestmentTypeComprehensive, 25)}

	first, err := uc.Calculate(context.Background(), batch)
	require.NoError(t, err)
	second, err := uc.Calculate(context.Background(), batch)
	require.NoError(t, err)

	assert.True(t, first["inv1"].YourProfitShareSelectedPeriod.Equal(second["inv1"].YourProfitShareSelectedPeriod))
	assert.True(t, first["inv1"].BranchNetProfitSelectedPeriod.Equal(second["inv1"].BranchNetProfitSelectedPeriod))
}
