package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto del negocio.
type Expense struct {
	ID            string
	Category      string
	SubCategory   string
	Location      string
	ReferenceNo   string
	Date          time.Time
	Amount        decimal.Decimal
	TaxRate       decimal.Decimal
	PaymentMethod string
	ExpenseFor    string // empleado o contacto al que aplica el gasto
	IsRefund      bool
	IsRecurring   bool
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
