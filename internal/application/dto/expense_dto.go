package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest entrada para registrar un gasto.
type ExpenseRequest struct {
	Category      string          `json:"category" validate:"required"`
	SubCategory   string          `json:"sub_category"`
	Location      string          `json:"business_location"`
	ReferenceNo   string          `json:"reference_no"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	TaxRate       decimal.Decimal `json:"applicable_tax"`
	PaymentMethod string          `json:"payment_method"`
	ExpenseFor    string          `json:"expense_for"`
	IsRefund      bool            `json:"is_refund"`
	IsRecurring   bool            `json:"is_recurring"`
	Note          string          `json:"note"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	SubCategory   string          `json:"sub_category"`
	Location      string          `json:"business_location"`
	ReferenceNo   string          `json:"reference_no"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	TaxRate       decimal.Decimal `json:"applicable_tax"`
	PaymentMethod string          `json:"payment_method"`
	ExpenseFor    string          `json:"expense_for"`
	IsRefund      bool            `json:"is_refund"`
	IsRecurring   bool            `json:"is_recurring"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ExpenseListResponse página de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}
