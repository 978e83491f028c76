package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
)

// SalesByCustomerRow ventas agregadas de un cliente, como las entrega el
// almacén.
type SalesByCustomerRow struct {
	Customer   string
	SaleCount  int64
	TotalSales decimal.Decimal
}

// ExpensesByCategoryRow gasto agregado de una categoría.
type ExpensesByCategoryRow struct {
	Category string
	Count    int64
	Total    decimal.Decimal
}

// StatsRepository puerto de agregaciones del dashboard. Lo implementa el
// almacén postgres; el almacén en memoria no lo ofrece.
type StatsRepository interface {
	QuerySalesByCustomer(ctx context.Context) ([]SalesByCustomerRow, error)
	QueryExpensesByCategory(ctx context.Context) ([]ExpensesByCategoryRow, error)
}

// DashboardUseCase arma los agregados del dashboard.
type DashboardUseCase struct {
	stats StatsRepository
}

// NewDashboardUseCase construye el caso de uso; stats nil deja el dashboard
// deshabilitado (driver memory).
func NewDashboardUseCase(stats StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// Summary devuelve ventas por cliente y gastos por categoría. Sin repositorio
// de agregados -> ErrUnsupported.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.stats == nil {
		return nil, domain.ErrUnsupported
	}
	sales, err := uc.stats.QuerySalesByCustomer(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.stats.QueryExpensesByCategory(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		SalesByCustomer:    make([]dto.SalesByCustomerDTO, 0, len(sales)),
		ExpensesByCategory: make([]dto.ExpensesByCategoryDTO, 0, len(expenses)),
	}
	for _, s := range sales {
		out.SalesByCustomer = append(out.SalesByCustomer, dto.SalesByCustomerDTO{
			Customer:   s.Customer,
			SaleCount:  s.SaleCount,
			TotalSales: s.TotalSales,
		})
	}
	for _, e := range expenses {
		out.ExpensesByCategory = append(out.ExpensesByCategory, dto.ExpensesByCategoryDTO{
			Category: e.Category,
			Count:    e.Count,
			Total:    e.Total,
		})
	}
	return out, nil
}
