package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
)

// ContractRevenueOptions opciones del agregador de ingreso por contratos.
type ContractRevenueOptions struct {
	// ExcludePreExisting omite contratos iniciados antes del período. Se usa
	// en el cálculo de participación de inversionistas: el ingreso de
	// contratos anteriores a la entrada del inversionista no le corresponde.
	ExcludePreExisting bool
	// Now fija el "ahora" para normalizar contratos sin fecha fin
	// (inyectable en tests). Cero = time.Now().
	Now time.Time
}

// ContractRevenueForPeriod suma el ingreso prorrateado de los contratos sobre
// el período [periodStart, periodEnd].
//
// Por contrato: tarifa neta de impuestos de cargo empresa × meses de la
// ventana del contrato = ingreso total; se reparte por día y se acumula la
// porción de días superpuestos con el período. Contratos con ventana de
// duración cero o negativa se omiten (fila de mala calidad, aporta 0 — el
// agregado nunca falla por una fila).
func ContractRevenueForPeriod(
	contracts []*entity.Contract,
	periodStart, periodEnd time.Time,
	opts ContractRevenueOptions,
) decimal.Decimal {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	sum := decimal.Zero
	for _, c := range contracts {
		start, end := NormalizeWindow(c.StartDate, c.EndDate, now)
		if opts.ExcludePreExisting && start.Before(periodStart) {
			continue
		}
		durationDays := DaysBetween(start, end)
		if durationDays.Sign() <= 0 {
			continue
		}
		overlap := OverlapDays(start, end, periodStart, periodEnd)
		if overlap.Sign() <= 0 {
			continue
		}
		netMonthly := NetOfCompanyTaxes(c.MonthlyRate, c.Taxes)
		total := netMonthly.Mul(decimal.NewFromInt(int64(MonthsBetween(start, end))))
		// Multiplicar antes de dividir conserva exactitud cuando la
		// superposición cubre la ventana completa.
		sum = sum.Add(total.Mul(overlap).Div(durationDays))
	}
	return sum
}

// ServiceRevenue suma el precio de los servicios puntuales. Con withTaxes, el
// impuesto adjunto de cargo empresa reduce el precio reconocido; los de cargo
// cliente nunca reducen la suma.
func ServiceRevenue(services []*entity.ClientService, withTaxes bool) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range services {
		price := s.Price
		if withTaxes && s.Tax != nil && s.Tax.IsCompanyBorne() {
			price = price.Sub(price.Mul(s.Tax.Rate).Div(hundred))
		}
		sum = sum.Add(price)
	}
	return sum
}

// OccupancyRate tasa de ocupación en porcentaje: occupied/total × 100.
// Devuelve 0 cuando no hay oficinas (nunca NaN ni división por cero).
func OccupancyRate(occupied, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(occupied)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred)
}
