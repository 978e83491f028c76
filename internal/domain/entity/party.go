package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party representa un proveedor o un cliente. IsBusiness discrimina entre
// persona y negocio; ambos juegos de campos conviven en el mismo registro
// (no es una variante etiquetada).
type Party struct {
	ID             string
	IsBusiness     bool
	ContactID      string
	BusinessName   string
	FirstName      string
	LastName       string
	Email          string
	Mobile         string
	Landline       string
	TaxNumber      string
	OpeningBalance decimal.Decimal
	PayTermDays    int
	AddressLine1   string
	AddressLine2   string
	City           string
	State          string
	Country        string
	ZipCode        string
	Group          string // grupo de clientes; vacío para proveedores
	AssignedTo     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName devuelve el nombre con el que se muestra la contraparte en
// listados y exportaciones.
func (p Party) DisplayName() string {
	if p.IsBusiness && p.BusinessName != "" {
		return p.BusinessName
	}
	name := p.FirstName
	if p.LastName != "" {
		if name != "" {
			name += " "
		}
		name += p.LastName
	}
	return name
}
