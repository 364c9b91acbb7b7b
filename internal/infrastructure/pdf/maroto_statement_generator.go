// Package pdf implementa la generación del estado de cuenta de una inversión.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Inversionista + Tipo   │  Período del cálculo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Capital aportado / Porcentaje de participación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Desglose de ingresos y egresos del período          │
//	│  TABLA: Impuestos aplicados sobre la participación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Participación bruta / Impuestos / NETO A PAGAR    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	appreport "github.com/tu-usuario/cowork-pro/internal/application/report"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 160, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appreport.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa report.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF del estado de cuenta y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	investment *entity.Investment,
	result dto.InvestmentCalculationResult,
	period dto.PeriodDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta de Inversión", true).
		WithAuthor(investment.InvestorName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(investment, period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(investment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Desglose del período
	m.AddRows(sectionTitleRow("DESGLOSE DEL PERÍODO"))
	for _, r := range breakdownRows(result.Details) {
		m.AddRows(r)
	}

	// Impuestos aplicados sobre la participación bruta
	if len(result.Details.AppliedTaxes) > 0 {
		m.AddRows(sectionTitleRow("IMPUESTOS SOBRE LA PARTICIPACIÓN"))
		for _, r := range appliedTaxRows(result.Details.AppliedTaxes) {
			m.AddRows(r)
		}
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(result))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: inversionista + tipo (izq) y período (der).
func headerRow(investment *entity.Investment, period dto.PeriodDTO) core.Row {
	tipo := "Participación integral"
	if investment.Type == entity.InvestmentTypeContractual {
		tipo = "Participación sobre contratos"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(investment.InvestorName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(tipo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA DE INVERSIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Período: %s a %s", period.StartDate, period.EndDate), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: capital aportado y porcentaje de participación.
func summaryRow(investment *entity.Investment) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CONDICIONES DE LA INVERSIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Capital aportado: $%s   |   Participación: %s%%",
				formatMoney(investment.Amount.StringFixed(0)),
				investment.Percentage.String(),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// breakdownRows: una fila por rubro del cálculo del período.
func breakdownRows(d dto.InvestmentCalculationDetails) []core.Row {
	items := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Ingreso por contratos (prorrateado)", d.ContractRevenue},
		{"Ingreso por servicios puntuales", d.ServiceRevenue},
		{"Otros ingresos", d.IncomeAmount},
		{"Total ingresos", d.TotalIncome},
		{"Total egresos", d.TotalExpense},
		{"Utilidad neta del período", d.TotalNetProfit},
	}
	rows := make([]core.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, labeledAmountRow(item.label, item.amount))
	}
	return rows
}

// appliedTaxRows: una fila por impuesto aplicado sobre la participación bruta.
func appliedTaxRows(taxes []dto.AppliedTaxDTO) []core.Row {
	rows := make([]core.Row, 0, len(taxes))
	for _, t := range taxes {
		label := fmt.Sprintf("%s (%s%%)", t.Name, t.Rate.String())
		rows = append(rows, labeledAmountRow(label, t.Amount))
	}
	return rows
}

// labeledAmountRow: etiqueta a la izquierda, monto a la derecha. Los montos
// negativos van en rojo.
func labeledAmountRow(label string, amount decimal.Decimal) core.Row {
	color := colorGray
	if amount.IsNegative() {
		color = colorRed
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 2,
		})),
		col.New(4).Add(text.New("$"+formatMoney(amount.StringFixed(2)), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1, Color: color,
		})),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(result dto.InvestmentCalculationResult) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	d := result.Details
	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Participación bruta:"),
			label("Impuestos:"),
			grandLabel("NETO A PAGAR:"),
		),
		col.New(4).Add(
			value("$"+formatMoney(d.GrossProfitShare.StringFixed(2))),
			value("$"+formatMoney(d.TotalTaxAmount.StringFixed(2))),
			grandValue("$"+formatMoney(result.YourProfitShareSelectedPeriod.StringFixed(2))),
		),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en la parte entera de un string
// numérico. Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, fracPart = s[:i], s[i+1:]
			break
		}
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+len(fracPart)+2)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf)
	if fracPart != "" {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
