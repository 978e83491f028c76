package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// Fórmula central de totales (servicio de dominio). Todas las pantallas la
// comparten; el orden es fijo y significativo:
//
//	subtotal línea = cantidad * precioUnitario - descuentoLínea
//	S              = Σ subtotales de línea
//	conDescuento   = S - S*d/100            (Percentage)  |  S - d  (Fixed)
//	conImpuesto    = conDescuento * (1 + t/100)
//	total          = conImpuesto + envío
//
// El impuesto se aplica siempre sobre el monto ya descontado, nunca al revés.

var cien = decimal.NewFromInt(100)

// LineSubtotal calcula el subtotal de una línea.
func LineSubtotal(quantity, unitPrice, discount decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Sub(discount)
}

// RecalculateLines recalcula el subtotal de cada línea en su lugar y devuelve
// la suma. Se invoca en cada mutación de cantidad, precio o descuento y una
// vez más antes de persistir.
func RecalculateLines(lines []entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		lines[i].Subtotal = LineSubtotal(lines[i].Quantity, lines[i].UnitPrice, lines[i].Discount)
		total = total.Add(lines[i].Subtotal)
	}
	return total
}

// DocumentTotal aplica descuento, impuesto y envío sobre la suma de líneas.
// discountType es Percentage o Fixed; cualquier otro valor se trata como Fixed
// con monto cero para no inventar descuentos.
func DocumentTotal(itemsTotal decimal.Decimal, discountType string, discountAmount, taxRate, shipping decimal.Decimal) decimal.Decimal {
	total := itemsTotal
	switch discountType {
	case entity.DiscountPercentage:
		total = total.Sub(total.Mul(discountAmount).Div(cien))
	case entity.DiscountFixed:
		total = total.Sub(discountAmount)
	}
	total = total.Add(total.Mul(taxRate).Div(cien))
	return total.Add(shipping)
}
