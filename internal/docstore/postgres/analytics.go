package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
)

// Agregaciones para el dashboard. Operan directamente sobre el jsonb con
// ::numeric, y el codec pgx-shopspring-decimal materializa los montos como
// decimal sin pasar por float64.

// QuerySalesByCustomer devuelve el total vendido por cliente, mayor primero.
func (s *Store) QuerySalesByCustomer(ctx context.Context) ([]usecase.SalesByCustomerRow, error) {
	const q = `
		SELECT
			COALESCE(body->>'party', '') AS customer,
			COUNT(*) AS sale_count,
			COALESCE(SUM((body->>'grandTotal')::numeric), 0) AS total_sales
		FROM documents
		WHERE collection = 'sales'
		GROUP BY 1
		ORDER BY total_sales DESC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("ventas por cliente: %w", err)
	}
	defer rows.Close()

	var out []usecase.SalesByCustomerRow
	for rows.Next() {
		var r usecase.SalesByCustomerRow
		if err := rows.Scan(&r.Customer, &r.SaleCount, &r.TotalSales); err != nil {
			return nil, fmt.Errorf("scan ventas por cliente: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// QueryExpensesByCategory devuelve el gasto total por categoría, mayor primero.
func (s *Store) QueryExpensesByCategory(ctx context.Context) ([]usecase.ExpensesByCategoryRow, error) {
	const q = `
		SELECT
			COALESCE(body->>'category', '') AS category,
			COUNT(*) AS expense_count,
			COALESCE(SUM((body->>'amount')::numeric), 0) AS total
		FROM documents
		WHERE collection = 'expenses'
		GROUP BY 1
		ORDER BY total DESC`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("gastos por categoría: %w", err)
	}
	defer rows.Close()

	var out []usecase.ExpensesByCategoryRow
	for rows.Next() {
		var r usecase.ExpensesByCategoryRow
		if err := rows.Scan(&r.Category, &r.Count, &r.Total); err != nil {
			return nil, fmt.Errorf("scan gastos por categoría: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

var _ usecase.StatsRepository = (*Store)(nil)
