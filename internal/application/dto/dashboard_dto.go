package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard: agregados de ventas por
// cliente y de gastos por categoría, calculados por el almacén.
type DashboardResponse struct {
	SalesByCustomer    []SalesByCustomerDTO    `json:"sales_by_customer"`
	ExpensesByCategory []ExpensesByCategoryDTO `json:"expenses_by_category"`
}

// SalesByCustomerDTO ventas agregadas de un cliente.
type SalesByCustomerDTO struct {
	Customer   string          `json:"customer"`
	SaleCount  int64           `json:"sale_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ExpensesByCategoryDTO gasto agregado de una categoría.
type ExpensesByCategoryDTO struct {
	Category string          `json:"category"`
	Count    int64           `json:"count"`
	Total    decimal.Decimal `json:"total"`
}
