package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount es una promoción aplicable por marca/categoría/ubicación durante
// una ventana de fechas. Priority desempata cuando aplican varias.
type Discount struct {
	ID             string
	Name           string
	Brand          string
	Category       string
	Location       string
	Priority       int
	DiscountType   string // Percentage | Fixed
	DiscountAmount decimal.Decimal
	StartsAt       time.Time
	EndsAt         time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
