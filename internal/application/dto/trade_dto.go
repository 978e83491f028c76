package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de detalle de entrada. El subtotal no se acepta del
// cliente: se recalcula siempre del lado del servidor.
type LineItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
}

// LineItemResponse línea de detalle con su subtotal calculado.
type LineItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// TradeRequest entrada para crear o actualizar un documento comercial
// (venta, compra, borrador, cotización, orden o requisición).
type TradeRequest struct {
	Party           string            `json:"party"`
	Date            time.Time         `json:"date"`
	ReferenceNo     string            `json:"reference_no"`
	Location        string            `json:"business_location"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	ShippingStatus  string            `json:"shipping_status"`
	Lines           []LineItemRequest `json:"lines" validate:"required,min=1"`
	DiscountType    string            `json:"discount_type" validate:"omitempty,oneof=Percentage Fixed"`
	DiscountAmount  decimal.Decimal   `json:"discount_amount"`
	TaxRate         decimal.Decimal   `json:"order_tax"`
	ShippingCharges decimal.Decimal   `json:"shipping_charges"`
	PaymentAmount   decimal.Decimal   `json:"payment_amount"`
	PaymentMethod   string            `json:"payment_method"`
	Notes           string            `json:"notes"`
	AddedBy         string            `json:"added_by"`
	// DecrementStock solo aplica a ventas: descuenta niveles de stock al crear.
	DecrementStock bool `json:"decrement_stock"`
}

// TradeResponse documento comercial con totales calculados.
type TradeResponse struct {
	ID              string             `json:"id"`
	Party           string             `json:"party"`
	Date            time.Time          `json:"date"`
	ReferenceNo     string             `json:"reference_no"`
	Location        string             `json:"business_location"`
	Status          string             `json:"status"`
	PaymentStatus   string             `json:"payment_status"`
	ShippingStatus  string             `json:"shipping_status"`
	Lines           []LineItemResponse `json:"lines"`
	DiscountType    string             `json:"discount_type"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	TaxRate         decimal.Decimal    `json:"order_tax"`
	ShippingCharges decimal.Decimal    `json:"shipping_charges"`
	ItemsTotal      decimal.Decimal    `json:"items_total"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	PaymentAmount   decimal.Decimal    `json:"payment_amount"`
	PaymentMethod   string             `json:"payment_method"`
	PaymentDue      decimal.Decimal    `json:"payment_due"`
	Notes           string             `json:"notes"`
	AddedBy         string             `json:"added_by"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// TradeListResponse página de documentos comerciales.
type TradeListResponse struct {
	Items []TradeResponse `json:"items"`
	Meta  ListMeta        `json:"meta"`
}
