package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest entrada para una transferencia de stock entre ubicaciones.
type TransferRequest struct {
	Date            time.Time         `json:"date"`
	ReferenceNo     string            `json:"reference_no"`
	FromLocation    string            `json:"location_from" validate:"required"`
	ToLocation      string            `json:"location_to" validate:"required"`
	Status          string            `json:"status"`
	Lines           []LineItemRequest `json:"lines" validate:"required,min=1"`
	ShippingCharges decimal.Decimal   `json:"shipping_charges"`
	Notes           string            `json:"notes"`
}

// TransferResponse transferencia con totales calculados.
type TransferResponse struct {
	ID              string             `json:"id"`
	Date            time.Time          `json:"date"`
	ReferenceNo     string             `json:"reference_no"`
	FromLocation    string             `json:"location_from"`
	ToLocation      string             `json:"location_to"`
	Status          string             `json:"status"`
	Lines           []LineItemResponse `json:"lines"`
	ShippingCharges decimal.Decimal    `json:"shipping_charges"`
	ItemsTotal      decimal.Decimal    `json:"items_total"`
	GrandTotal      decimal.Decimal    `json:"grand_total"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// AdjustmentRequest entrada para un ajuste de stock.
type AdjustmentRequest struct {
	Date            time.Time         `json:"date"`
	ReferenceNo     string            `json:"reference_no"`
	Location        string            `json:"business_location" validate:"required"`
	AdjustmentType  string            `json:"adjustment_type"`
	Lines           []LineItemRequest `json:"lines" validate:"required,min=1"`
	RecoveredAmount decimal.Decimal   `json:"recovered_amount"`
	Reason          string            `json:"reason"`
}

// AdjustmentResponse ajuste con su monto total calculado.
type AdjustmentResponse struct {
	ID              string             `json:"id"`
	Date            time.Time          `json:"date"`
	ReferenceNo     string             `json:"reference_no"`
	Location        string             `json:"business_location"`
	AdjustmentType  string             `json:"adjustment_type"`
	Lines           []LineItemResponse `json:"lines"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	RecoveredAmount decimal.Decimal    `json:"recovered_amount"`
	Reason          string             `json:"reason"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// TransferListResponse página de transferencias.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}

// AdjustmentListResponse página de ajustes.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Meta  ListMeta             `json:"meta"`
}

// StockLevelResponse nivel vigente de un producto en una ubicación.
type StockLevelResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Location  string          `json:"business_location"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StockLevelListResponse página de niveles de stock.
type StockLevelListResponse struct {
	Items []StockLevelResponse `json:"items"`
	Meta  ListMeta             `json:"meta"`
}
