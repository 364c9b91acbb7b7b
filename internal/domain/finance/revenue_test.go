package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/finance"
)

func contract(id string, start, end time.Time, monthlyRate int64, taxes ...entity.Tax) *entity.Contract {
	return &entity.Contract{
		ID:          id,
		StartDate:   &start,
		EndDate:     &end,
		MonthlyRate: decimal.NewFromInt(monthlyRate),
		Taxes:       taxes,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TestContractRevenue_ProrrateoParcial vector de referencia del prorrateo:
//
//	Contrato Ene 1 – Ene 31, tarifa 6000/mes, impuesto empresa 15%.
//	Consulta Ene 1 – Ene 15.
//
//	neto mensual  = 6000 − 900        = 5100
//	meses         = 1 → ingreso total = 5100
//	duración      = 30 días → diario  = 170
//	superposición = 14 días → ingreso = 2380
// ──────────────────────────────────────────────────────────────────────────────
func TestContractRevenue_ProrrateoParcial(t *testing.T) {
	c := contract("c1",
		date(2023, time.January, 1), date(2023, time.January, 31),
		6000, companyTax("renta", "Renta", 15))

	got := finance.ContractRevenueForPeriod(
		[]*entity.Contract{c},
		date(2023, time.January, 1), date(2023, time.January, 15),
		finance.ContractRevenueOptions{},
	)
	assert.Equal(t, "2380", got.String())
}

// TestContractRevenue_PeriodoCompleto dos contratos consultados sobre el año
// completo devuelven exactamente su ingreso nominal: 1000×12 + 500×6 = 15000.
func TestContractRevenue_PeriodoCompleto(t *testing.T) {
	contracts := []*entity.Contract{
		contract("a", date(2023, time.January, 1), date(2023, time.December, 31), 1000),
		contract("b", date(2023, time.July, 1), date(2023, time.December, 31), 500),
	}

	got := finance.ContractRevenueForPeriod(
		contracts,
		date(2023, time.January, 1), date(2023, time.December, 31),
		finance.ContractRevenueOptions{},
	)
	assert.Equal(t, "15000", got.String())
}

// TestContractRevenue_AsimetriaImpuestos un impuesto de cargo empresa reduce
// el ingreso del período; uno de cargo cliente no lo toca.
func TestContractRevenue_AsimetriaImpuestos(t *testing.T) {
	start, end := date(2023, time.January, 1), date(2023, time.December, 31)

	t.Run("empresa 15%: 10000×12 → 102000", func(t *testing.T) {
		c := contract("c1", start, end, 10000, companyTax("renta", "Renta", 15))
		got := finance.ContractRevenueForPeriod([]*entity.Contract{c}, start, end, finance.ContractRevenueOptions{})
		assert.Equal(t, "102000", got.String())
	})

	t.Run("cliente 10%: 10000×12 → 120000 (sin descuento)", func(t *testing.T) {
		c := contract("c1", start, end, 10000, clientTax("iva", "IVA", 10))
		got := finance.ContractRevenueForPeriod([]*entity.Contract{c}, start, end, finance.ContractRevenueOptions{})
		assert.Equal(t, "120000", got.String())
	})
}

// TestContractRevenue_ExcluyePreexistentes con ExcludePreExisting, un contrato
// iniciado antes del período no aporta nada aunque se superponga.
func TestContractRevenue_ExcluyePreexistentes(t *testing.T) {
	c := contract("viejo", date(2022, time.June, 1), date(2023, time.June, 1), 2000)
	period := finance.ContractRevenueOptions{ExcludePreExisting: true}

	got := finance.ContractRevenueForPeriod(
		[]*entity.Contract{c},
		date(2023, time.January, 1), date(2023, time.December, 31),
		period,
	)
	assert.True(t, got.IsZero(), "contrato preexistente debe aportar cero")

	// Sin el flag sí aporta
	got = finance.ContractRevenueForPeriod(
		[]*entity.Contract{c},
		date(2023, time.January, 1), date(2023, time.December, 31),
		finance.ContractRevenueOptions{},
	)
	assert.True(t, got.IsPositive())
}

// TestContractRevenue_FilasDefectuosas ventanas de duración cero o negativa se
// omiten sin fallar la agregación.
func TestContractRevenue_FilasDefectuosas(t *testing.T) {
	same := date(2023, time.March, 1)
	contracts := []*entity.Contract{
		contract("cero", same, same, 9000),
		contract("invertido", date(2023, time.May, 1), date(2023, time.April, 1), 9000),
		contract("sano", date(2023, time.January, 1), date(2023, time.January, 31), 6000),
	}

	got := finance.ContractRevenueForPeriod(
		contracts,
		date(2023, time.January, 1), date(2023, time.January, 31),
		finance.ContractRevenueOptions{},
	)
	assert.Equal(t, "6000", got.String(), "solo el contrato sano debe aportar")
}

// TestContractRevenue_FechaFinNula un contrato abierto usa `now` como fin.
func TestContractRevenue_FechaFinNula(t *testing.T) {
	start := date(2023, time.January, 1)
	c := &entity.Contract{
		ID:          "abierto",
		StartDate:   &start,
		MonthlyRate: decimal.NewFromInt(1000),
	}

	now := date(2023, time.December, 31)
	got := finance.ContractRevenueForPeriod(
		[]*entity.Contract{c},
		date(2023, time.January, 1), date(2023, time.December, 31),
		finance.ContractRevenueOptions{Now: now},
	)
	assert.Equal(t, "12000", got.String())
}

// TestContractRevenue_Idempotente la misma entrada produce siempre la misma
// salida (función pura, sin estado).
func TestContractRevenue_Idempotente(t *testing.T) {
	contracts := []*entity.Contract{
		contract("c1", date(2023, time.January, 1), date(2023, time.December, 31), 1234,
			companyTax("renta", "Renta", 15), clientTax("iva", "IVA", 19)),
	}
	from, to := date(2023, time.March, 1), date(2023, time.September, 15)

	first := finance.ContractRevenueForPeriod(contracts, from, to, finance.ContractRevenueOptions{})
	second := finance.ContractRevenueForPeriod(contracts, from, to, finance.ContractRevenueOptions{})
	assert.True(t, first.Equal(second))
}

// TestServiceRevenue asimetría de impuestos en servicios puntuales:
// empresa 15% sobre 1000 → 850; cliente 10% sobre 1000 → 1000.
func TestServiceRevenue(t *testing.T) {
	renta := companyTax("renta", "Renta", 15)
	iva := clientTax("iva", "IVA", 10)

	t.Run("impuesto empresa descuenta con withTaxes", func(t *testing.T) {
		services := []*entity.ClientService{
			{ID: "s1", Price: decimal.NewFromInt(600), Tax: &renta},
			{ID: "s2", Price: decimal.NewFromInt(400), Tax: &renta},
		}
		got := finance.ServiceRevenue(services, true)
		assert.Equal(t, "850", got.String())
	})

	t.Run("impuesto cliente nunca descuenta", func(t *testing.T) {
		services := []*entity.ClientService{
			{ID: "s1", Price: decimal.NewFromInt(600), Tax: &iva},
			{ID: "s2", Price: decimal.NewFromInt(400), Tax: &iva},
		}
		got := finance.ServiceRevenue(services, true)
		assert.Equal(t, "1000", got.String())
	})

	t.Run("sin withTaxes no se descuenta nada", func(t *testing.T) {
		services := []*entity.ClientService{
			{ID: "s1", Price: decimal.NewFromInt(1000), Tax: &renta},
		}
		got := finance.ServiceRevenue(services, false)
		assert.Equal(t, "1000", got.String())
	})
}

// TestOccupancyRate guardia de división por cero: sin oficinas → 0, nunca NaN.
func TestOccupancyRate(t *testing.T) {
	assert.True(t, finance.OccupancyRate(0, 0).IsZero())
	assert.Equal(t, "50", finance.OccupancyRate(5, 10).String())
	assert.Equal(t, "100", finance.OccupancyRate(8, 8).String())
}
