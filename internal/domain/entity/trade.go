package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento comercial. Todos comparten la misma forma: referencia a
// una contraparte, líneas y totales calculados.
const (
	TradeSale                = "sales"
	TradeSellReturn          = "sell-returns"
	TradePurchase            = "purchases"
	TradeDraft               = "drafts"
	TradeQuotation           = "quotations"
	TradePurchaseOrder       = "purchase-orders"
	TradePurchaseRequisition = "purchase-requisitions"
)

// Tipos de descuento a nivel de documento. Porcentaje o monto fijo, nunca ambos.
const (
	DiscountPercentage = "Percentage"
	DiscountFixed      = "Fixed"
)

// LineItem es una línea de detalle de un documento comercial.
// Subtotal debe valer siempre Quantity*UnitPrice - Discount; se recalcula en
// cada mutación de la línea, nunca se confía en el valor almacenado.
type LineItem struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Subtotal    decimal.Decimal
}

// TradeDocument es la cabecera común de ventas, compras, borradores,
// cotizaciones, órdenes y requisiciones de compra. Party es el proveedor o el
// cliente según el tipo. Status es una cadena libre, no un enum cerrado.
type TradeDocument struct {
	ID              string
	Party           string
	Date            time.Time
	ReferenceNo     string
	Location        string
	Status          string
	PaymentStatus   string
	ShippingStatus  string
	Lines           []LineItem
	DiscountType    string // Percentage | Fixed
	DiscountAmount  decimal.Decimal
	TaxRate         decimal.Decimal // porcentaje sobre el monto ya descontado
	ShippingCharges decimal.Decimal
	ItemsTotal      decimal.Decimal // suma de subtotales de línea
	GrandTotal      decimal.Decimal // resultado de la fórmula central de totales
	PaymentAmount   decimal.Decimal
	PaymentMethod   string
	PaymentDue      decimal.Decimal
	Notes           string
	AddedBy         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
