package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyRequest entrada para crear o actualizar un proveedor o cliente.
// IsBusiness decide qué juego de campos se muestra; ambos viajan siempre.
type PartyRequest struct {
	IsBusiness     bool            `json:"is_business"`
	ContactID      string          `json:"contact_id"`
	BusinessName   string          `json:"business_name"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Mobile         string          `json:"mobile"`
	Landline       string          `json:"landline"`
	TaxNumber      string          `json:"tax_number"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	PayTermDays    int             `json:"pay_term_days"`
	AddressLine1   string          `json:"address_line_1"`
	AddressLine2   string          `json:"address_line_2"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Country        string          `json:"country"`
	ZipCode        string          `json:"zip_code"`
	Group          string          `json:"group"`
	AssignedTo     string          `json:"assigned_to"`
}

// PartyResponse salida de un proveedor o cliente.
type PartyResponse struct {
	ID             string          `json:"id"`
	IsBusiness     bool            `json:"is_business"`
	ContactID      string          `json:"contact_id"`
	BusinessName   string          `json:"business_name"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	DisplayName    string          `json:"display_name"`
	Email          string          `json:"email"`
	Mobile         string          `json:"mobile"`
	Landline       string          `json:"landline"`
	TaxNumber      string          `json:"tax_number"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	PayTermDays    int             `json:"pay_term_days"`
	AddressLine1   string          `json:"address_line_1"`
	AddressLine2   string          `json:"address_line_2"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Country        string          `json:"country"`
	ZipCode        string          `json:"zip_code"`
	Group          string          `json:"group"`
	AssignedTo     string          `json:"assigned_to"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PartyListResponse página de proveedores o clientes.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Meta  ListMeta        `json:"meta"`
}
