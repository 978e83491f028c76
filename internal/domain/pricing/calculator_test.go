package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/pricing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Subtotal de línea: qty * precio - descuento, en cada mutación.
// ──────────────────────────────────────────────────────────────────────────────

func TestLineSubtotal(t *testing.T) {
	cases := []struct {
		name                           string
		qty, price, discount, expected string
	}{
		{"sin descuento", "3", "10", "0", "30"},
		{"con descuento", "2", "15.50", "1", "30"},
		{"cantidad decimal", "0.5", "8", "0", "4"},
		{"descuento mayor que el bruto", "1", "5", "10", "-5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.LineSubtotal(d(tc.qty), d(tc.price), d(tc.discount))
			assert.True(t, got.Equal(d(tc.expected)), "esperado %s, obtenido %s", tc.expected, got)
		})
	}
}

func TestRecalculateLines_ActualizaSubtotalesEnSitio(t *testing.T) {
	lines := []entity.LineItem{
		{ProductName: "A", Quantity: d("2"), UnitPrice: d("10"), Discount: d("0"), Subtotal: d("999")},
		{ProductName: "B", Quantity: d("1"), UnitPrice: d("5.25"), Discount: d("0.25"), Subtotal: d("999")},
	}
	sum := pricing.RecalculateLines(lines)

	// El subtotal almacenado nunca se confía: se pisa con el recalculado.
	require.True(t, lines[0].Subtotal.Equal(d("20")))
	require.True(t, lines[1].Subtotal.Equal(d("5")))
	assert.True(t, sum.Equal(d("25")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fórmula de totales: S → descuento → impuesto → envío. El vector
// S=100, d=10%, t=5%, envío=20 debe dar exactamente 114.5; si alguien
// intercambia descuento e impuesto este test falla.
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentTotal_OrdenDescuentoImpuestoEnvio(t *testing.T) {
	total := pricing.DocumentTotal(d("100"), entity.DiscountPercentage, d("10"), d("5"), d("20"))
	assert.True(t, total.Equal(d("114.5")), "esperado 114.5, obtenido %s", total)
}

func TestDocumentTotal(t *testing.T) {
	cases := []struct {
		name                            string
		items                           string
		discountType                    string
		discount, tax, shipping, expect string
	}{
		{"sin nada", "100", "", "0", "0", "0", "100"},
		{"descuento fijo", "100", entity.DiscountFixed, "30", "0", "0", "70"},
		{"descuento fijo con impuesto", "100", entity.DiscountFixed, "20", "10", "0", "88"},
		{"solo impuesto", "200", entity.DiscountPercentage, "0", "19", "0", "238"},
		{"solo envío", "50", entity.DiscountFixed, "0", "0", "7.5", "57.5"},
		{"envío no paga impuesto", "100", entity.DiscountPercentage, "0", "10", "10", "120"},
		{"tipo desconocido ignora descuento", "100", "Mystery", "50", "0", "0", "100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.DocumentTotal(d(tc.items), tc.discountType, d(tc.discount), d(tc.tax), d(tc.shipping))
			assert.True(t, got.Equal(d(tc.expect)), "esperado %s, obtenido %s", tc.expect, got)
		})
	}
}
