package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransfer mueve mercancía entre dos ubicaciones del negocio.
// Status es una cadena libre (Pending, In Transit, Completed...), no un enum.
type StockTransfer struct {
	ID              string
	Date            time.Time
	ReferenceNo     string
	FromLocation    string
	ToLocation      string
	Status          string
	Lines           []LineItem
	ShippingCharges decimal.Decimal
	ItemsTotal      decimal.Decimal
	GrandTotal      decimal.Decimal
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StockAdjustment corrige el stock de una ubicación (merma, daño, conteo).
type StockAdjustment struct {
	ID             string
	Date           time.Time
	ReferenceNo    string
	Location       string
	AdjustmentType string // "Normal" | "Abnormal"
	Lines          []LineItem
	TotalAmount    decimal.Decimal
	RecoveredAmount decimal.Decimal
	Reason         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockLevel es el stock vigente de un producto en una ubicación. Lo
// decrementa la venta y lo ajustan transferencias y ajustes; las escrituras
// multi-documento no son atómicas (limitación aceptada del diseño).
type StockLevel struct {
	ID        string
	ProductID string
	Location  string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
