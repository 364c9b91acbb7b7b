package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/finance"
)

func companyTax(id, name string, rate int64) entity.Tax {
	return entity.Tax{ID: id, Name: name, Rate: decimal.NewFromInt(rate), Bearer: entity.TaxBearerCompany}
}

func clientTax(id, name string, rate int64) entity.Tax {
	return entity.Tax{ID: id, Name: name, Rate: decimal.NewFromInt(rate), Bearer: entity.TaxBearerClient}
}

// TestNetOfCompanyTaxes los impuestos de cargo empresa se descuentan planos
// contra la base original (no compuestos); los de cargo cliente se ignoran.
func TestNetOfCompanyTaxes(t *testing.T) {
	base := decimal.NewFromInt(6000)

	t.Run("un impuesto empresa 15%", func(t *testing.T) {
		net := finance.NetOfCompanyTaxes(base, []entity.Tax{companyTax("t1", "Renta", 15)})
		assert.Equal(t, "5100", net.String())
	})

	t.Run("impuesto cliente no descuenta", func(t *testing.T) {
		net := finance.NetOfCompanyTaxes(base, []entity.Tax{clientTax("t2", "IVA", 10)})
		assert.Equal(t, "6000", net.String())
	})

	t.Run("dos impuestos empresa: suma plana, no compuesta", func(t *testing.T) {
		// 6000 − 600 − 900 = 4500 (cada uno contra la base original)
		net := finance.NetOfCompanyTaxes(base, []entity.Tax{
			companyTax("t3", "ICA", 10),
			companyTax("t4", "Renta", 15),
		})
		assert.Equal(t, "4500", net.String())
	})
}

// TestDedupeShareTaxes el mismo impuesto en dos contratos cuenta una sola vez
// y los de cargo empresa quedan excluidos (ya redujeron la base de ingreso).
func TestDedupeShareTaxes(t *testing.T) {
	shared := clientTax("iva", "IVA", 10)
	contracts := []*entity.Contract{
		{ID: "c1", Taxes: []entity.Tax{shared, companyTax("renta", "Renta", 15)}},
		{ID: "c2", Taxes: []entity.Tax{shared}},
	}

	taxes := finance.DedupeShareTaxes(contracts)
	require.Len(t, taxes, 1, "el impuesto compartido debe aparecer una sola vez y el de empresa nunca")
	assert.Equal(t, "iva", taxes[0].ID)
}

// TestApplyShareTaxes cálculo uniforme gross×rate/100, incluso con
// participación bruta negativa (impuesto negativo = reembolso).
func TestApplyShareTaxes(t *testing.T) {
	taxes := []entity.Tax{clientTax("iva", "IVA", 10)}

	t.Run("participación positiva", func(t *testing.T) {
		applied, total := finance.ApplyShareTaxes(decimal.NewFromInt(6250), taxes)
		require.Len(t, applied, 1)
		assert.Equal(t, "625", applied[0].Amount.String())
		assert.Equal(t, "625", total.String())
	})

	t.Run("participación negativa produce impuesto negativo", func(t *testing.T) {
		applied, total := finance.ApplyShareTaxes(decimal.NewFromInt(-1000), taxes)
		require.Len(t, applied, 1)
		assert.Equal(t, "-100", applied[0].Amount.String())
		assert.Equal(t, "-100", total.String())
	})

	t.Run("sin impuestos", func(t *testing.T) {
		applied, total := finance.ApplyShareTaxes(decimal.NewFromInt(500), nil)
		assert.Empty(t, applied)
		assert.True(t, total.IsZero())
	})
}
