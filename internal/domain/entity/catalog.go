package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NamedRecord es la forma compartida de los catálogos simples: marcas,
// categorías, ubicaciones, grupos de clientes, categorías de gasto, fuentes
// y etapas de vida del CRM. Una colección por catálogo, la misma forma.
type NamedRecord struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Unit es una unidad de medida de producto.
type Unit struct {
	ID           string
	Name         string
	ShortName    string
	AllowDecimal bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Tax es una tasa de impuesto aplicable a productos y documentos.
type Tax struct {
	ID        string
	Name      string
	Rate      decimal.Decimal // porcentaje
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Warranty es una garantía ofrecida sobre productos vendidos.
type Warranty struct {
	ID           string
	Name         string
	Description  string
	Duration     int
	DurationType string // days, months, years
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
