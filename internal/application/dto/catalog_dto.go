package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NamedRecordRequest entrada de los catálogos simples (marcas, categorías,
// ubicaciones, grupos, fuentes, etapas de vida, variaciones...).
type NamedRecordRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// NamedRecordResponse salida de un registro de catálogo simple.
type NamedRecordResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NamedRecordListResponse página de un catálogo simple.
type NamedRecordListResponse struct {
	Items []NamedRecordResponse `json:"items"`
	Meta  ListMeta              `json:"meta"`
}

// UnitRequest entrada de una unidad de medida.
type UnitRequest struct {
	Name         string `json:"name" validate:"required"`
	ShortName    string `json:"short_name"`
	AllowDecimal bool   `json:"allow_decimal"`
}

// UnitResponse salida de una unidad de medida.
type UnitResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ShortName    string    `json:"short_name"`
	AllowDecimal bool      `json:"allow_decimal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TaxRequest entrada de una tasa de impuesto.
type TaxRequest struct {
	Name string          `json:"name" validate:"required"`
	Rate decimal.Decimal `json:"rate"`
}

// TaxResponse salida de una tasa de impuesto.
type TaxResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WarrantyRequest entrada de una garantía.
type WarrantyRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Duration     int    `json:"duration" validate:"min=0"`
	DurationType string `json:"duration_type" validate:"omitempty,oneof=days months years"`
}

// WarrantyResponse salida de una garantía.
type WarrantyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Duration     int       `json:"duration"`
	DurationType string    `json:"duration_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DiscountRequest entrada de una promoción.
type DiscountRequest struct {
	Name           string          `json:"name" validate:"required"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category"`
	Location       string          `json:"business_location"`
	Priority       int             `json:"priority"`
	DiscountType   string          `json:"discount_type" validate:"omitempty,oneof=Percentage Fixed"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	StartsAt       time.Time       `json:"starts_at"`
	EndsAt         time.Time       `json:"ends_at"`
	IsActive       bool            `json:"is_active"`
}

// DiscountResponse salida de una promoción.
type DiscountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category"`
	Location       string          `json:"business_location"`
	Priority       int             `json:"priority"`
	DiscountType   string          `json:"discount_type"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	StartsAt       time.Time       `json:"starts_at"`
	EndsAt         time.Time       `json:"ends_at"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// UnitListResponse página de unidades.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
	Meta  ListMeta       `json:"meta"`
}

// TaxListResponse página de tasas de impuesto.
type TaxListResponse struct {
	Items []TaxResponse `json:"items"`
	Meta  ListMeta      `json:"meta"`
}

// WarrantyListResponse página de garantías.
type WarrantyListResponse struct {
	Items []WarrantyResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}

// DiscountListResponse página de promociones.
type DiscountListResponse struct {
	Items []DiscountResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}
