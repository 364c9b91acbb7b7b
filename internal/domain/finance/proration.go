// Package finance implementa el motor de cálculo financiero puro (servicios
// de dominio sin I/O): prorrateo temporal de contratos, aplicación de
// impuestos y agregación de ingresos. Todas las cifras monetarias usan
// decimal.Decimal desde la frontera de la DB hacia adentro.
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerDay = decimal.NewFromInt(86400)

// MonthsBetween cuenta los meses cubiertos por la ventana [start, end].
//
// Fórmula: (años×12 + meses) + 1, menos 1 si el día del mes final es anterior
// al día del mes inicial (un mes final incompleto redondea hacia abajo).
// Piso de 1 mes siempre que start ≤ end, para que un contrato de duración
// mínima nunca produzca una tarifa indefinida.
//
//	Ene 1 – Ene 31 → 1    Ene 1 – Dic 31 → 12    Jul 1 – Dic 31 → 6
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if end.Day() < start.Day() {
		months--
	}
	if months < 1 {
		months = 1
	}
	return months
}

// OverlapDays devuelve los días de superposición entre [aStart, aEnd] y
// [bStart, bEnd]: min(aEnd, bEnd) − max(aStart, bStart). Una superposición
// negativa o cero aporta 0.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) decimal.Decimal {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	d := end.Sub(start)
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(d / time.Second)).Div(secondsPerDay)
}

// DaysBetween devuelve la duración de [start, end] en días (puede ser
// fraccionaria). Cero o negativa si start ≥ end.
func DaysBetween(start, end time.Time) decimal.Decimal {
	d := end.Sub(start)
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(d / time.Second)).Div(secondsPerDay)
}

// NormalizeWindow normaliza una ventana con extremos opcionales: inicio nulo
// se asume época Unix, fin nulo se asume `now`.
func NormalizeWindow(start, end *time.Time, now time.Time) (time.Time, time.Time) {
	s := time.Unix(0, 0).UTC()
	if start != nil {
		s = *start
	}
	e := now
	if end != nil {
		e = *end
	}
	return s, e
}
