package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// ExpenseUseCase casos de uso de gastos.
type ExpenseUseCase struct {
	expenses *service.Service[entity.Expense]
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenses *service.Service[entity.Expense]) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses}
}

// Create registra un gasto. Monto negativo -> ErrInvalidInput (los reembolsos
// usan el flag IsRefund, no el signo).
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := validateExpense(in); err != nil {
		return nil, err
	}
	now := time.Now()
	e := expenseFromRequest(in)
	e.CreatedAt = now
	e.UpdatedAt = now
	id, err := uc.expenses.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return toExpenseResponse(e), nil
}

// Update reemplaza el gasto completo.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := validateExpense(in); err != nil {
		return nil, err
	}
	current, err := uc.expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e := expenseFromRequest(in)
	e.ID = id
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now()
	if err := uc.expenses.Update(ctx, id, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// GetByID obtiene un gasto por id.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.expenses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Delete elimina el gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.expenses.Delete(ctx, id)
}

// List devuelve la lista vigente completa.
func (uc *ExpenseUseCase) List(ctx context.Context) ([]dto.ExpenseResponse, error) {
	items, err := uc.expenses.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(items))
	for _, e := range items {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

func validateExpense(in dto.ExpenseRequest) error {
	if in.Category == "" {
		return domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || in.TaxRate.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func expenseFromRequest(in dto.ExpenseRequest) entity.Expense {
	return entity.Expense{
		Category:      in.Category,
		SubCategory:   in.SubCategory,
		Location:      in.Location,
		ReferenceNo:   in.ReferenceNo,
		Date:          in.Date,
		Amount:        in.Amount,
		TaxRate:       in.TaxRate,
		PaymentMethod: in.PaymentMethod,
		ExpenseFor:    in.ExpenseFor,
		IsRefund:      in.IsRefund,
		IsRecurring:   in.IsRecurring,
		Note:          in.Note,
	}
}

func toExpenseResponse(e entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		Category:      e.Category,
		SubCategory:   e.SubCategory,
		Location:      e.Location,
		ReferenceNo:   e.ReferenceNo,
		Date:          e.Date,
		Amount:        e.Amount,
		TaxRate:       e.TaxRate,
		PaymentMethod: e.PaymentMethod,
		ExpenseFor:    e.ExpenseFor,
		IsRefund:      e.IsRefund,
		IsRecurring:   e.IsRecurring,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
