package finance

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// AppliedTax un impuesto aplicado sobre la participación bruta de un
// inversionista, con el monto resultante.
type AppliedTax struct {
	Name   string
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// NetOfCompanyTaxes descuenta de `base` cada impuesto a cargo de la empresa.
//
// Los descuentos son planos contra la base original (no compuestos contra una
// base decreciente): neto = base − Σ base×rate/100. Los impuestos a cargo del
// cliente se ignoran: no reducen el ingreso reconocido.
func NetOfCompanyTaxes(base decimal.Decimal, taxes []entity.Tax) decimal.Decimal {
	net := base
	for _, t := range taxes {
		if t.IsCompanyBorne() {
			net = net.Sub(base.Mul(t.Rate).Div(hundred))
		}
	}
	return net
}

// DedupeShareTaxes reúne la unión de impuestos referenciados por los
// contratos, deduplicada por identidad (el mismo impuesto en varios contratos
// cuenta una sola vez), y excluye los de cargo empresa: esos ya redujeron la
// base de ingreso y no deben descontar dos veces de la participación.
func DedupeShareTaxes(contracts []*entity.Contract) []entity.Tax {
	seen := make(map[string]bool)
	var taxes []entity.Tax
	for _, c := range contracts {
		for _, t := range c.Taxes {
			if seen[t.ID] || t.IsCompanyBorne() {
				seen[t.ID] = true
				continue
			}
			seen[t.ID] = true
			taxes = append(taxes, t)
		}
	}
	return taxes
}

// ApplyShareTaxes calcula cada impuesto como gross×rate/100 y devuelve el
// detalle junto al total. Se aplica de forma uniforme incluso con gross
// negativo (produce un impuesto negativo, efectivamente un reembolso); el
// tratamiento de pérdidas está pendiente de definición de producto.
func ApplyShareTaxes(gross decimal.Decimal, taxes []entity.Tax) ([]AppliedTax, decimal.Decimal) {
	applied := make([]AppliedTax, 0, len(taxes))
	total := decimal.Zero
	for _, t := range taxes {
		amount := gross.Mul(t.Rate).Div(hundred)
		applied = append(applied, AppliedTax{Name: t.Name, Rate: t.Rate, Amount: amount})
		total = total.Add(amount)
	}
	return applied, total
}
