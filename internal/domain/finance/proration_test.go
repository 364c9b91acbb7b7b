package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/cowork-pro/internal/domain/finance"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestMonthsBetween verifica la cuenta de meses con mes final incompleto
// redondeado hacia abajo y piso de 1.
func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"mes completo enero", date(2023, time.January, 1), date(2023, time.January, 31), 1},
		{"año completo", date(2023, time.January, 1), date(2023, time.December, 31), 12},
		{"medio año", date(2023, time.July, 1), date(2023, time.December, 31), 6},
		{"mes final incompleto", date(2023, time.March, 15), date(2023, time.June, 14), 3},
		{"ventana de un día cruzando mes", date(2023, time.January, 31), date(2023, time.February, 1), 1},
		{"mismo día: piso de 1", date(2023, time.May, 10), date(2023, time.May, 10), 1},
		{"multi-año", date(2022, time.February, 1), date(2023, time.January, 31), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, finance.MonthsBetween(tc.start, tc.end))
		})
	}
}

// TestOverlapDays verifica min(aEnd,bEnd) − max(aStart,bStart) con
// superposición negativa o cero aportando 0.
func TestOverlapDays(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           string
	}{
		{
			"superposición parcial de 14 días",
			date(2023, time.January, 1), date(2023, time.January, 31),
			date(2023, time.January, 1), date(2023, time.January, 15),
			"14",
		},
		{
			"rangos disjuntos",
			date(2023, time.January, 1), date(2023, time.January, 31),
			date(2023, time.March, 1), date(2023, time.March, 31),
			"0",
		},
		{
			"contacto exacto en el borde",
			date(2023, time.January, 1), date(2023, time.February, 1),
			date(2023, time.February, 1), date(2023, time.March, 1),
			"0",
		},
		{
			"b contenido en a",
			date(2023, time.January, 1), date(2023, time.December, 31),
			date(2023, time.June, 1), date(2023, time.June, 11),
			"10",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := finance.OverlapDays(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestNormalizeWindow fechas nulas: inicio → época Unix, fin → now.
func TestNormalizeWindow(t *testing.T) {
	now := date(2023, time.August, 1)
	start := date(2023, time.February, 1)

	s, e := finance.NormalizeWindow(&start, nil, now)
	assert.Equal(t, start, s)
	assert.Equal(t, now, e)

	s, e = finance.NormalizeWindow(nil, &start, now)
	assert.Equal(t, time.Unix(0, 0).UTC(), s)
	assert.Equal(t, start, e)
}
