package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/pricing"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// StockUseCase casos de uso de transferencias, ajustes y niveles de stock.
type StockUseCase struct {
	transfers   *service.Service[entity.StockTransfer]
	adjustments *service.Service[entity.StockAdjustment]
	levels      *service.Service[entity.StockLevel]
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	transfers *service.Service[entity.StockTransfer],
	adjustments *service.Service[entity.StockAdjustment],
	levels *service.Service[entity.StockLevel],
) *StockUseCase {
	return &StockUseCase{transfers: transfers, adjustments: adjustments, levels: levels}
}

// ── Transferencias ───────────────────────────────────────────────────────────

// CreateTransfer valida y persiste una transferencia con totales calculados.
func (uc *StockUseCase) CreateTransfer(ctx context.Context, in dto.TransferRequest) (*dto.TransferResponse, error) {
	t, err := buildTransfer(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	id, err := uc.transfers.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return toTransferResponse(t), nil
}

// UpdateTransfer reemplaza la transferencia recalculando totales.
func (uc *StockUseCase) UpdateTransfer(ctx context.Context, id string, in dto.TransferRequest) (*dto.TransferResponse, error) {
	current, err := uc.transfers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t, err := buildTransfer(in)
	if err != nil {
		return nil, err
	}
	t.ID = id
	t.CreatedAt = current.CreatedAt
	t.UpdatedAt = time.Now()
	if err := uc.transfers.Update(ctx, id, t); err != nil {
		return nil, err
	}
	return toTransferResponse(t), nil
}

// GetTransfer obtiene una transferencia por id.
func (uc *StockUseCase) GetTransfer(ctx context.Context, id string) (*dto.TransferResponse, error) {
	t, err := uc.transfers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTransferResponse(t), nil
}

// DeleteTransfer elimina la transferencia.
func (uc *StockUseCase) DeleteTransfer(ctx context.Context, id string) error {
	return uc.transfers.Delete(ctx, id)
}

// ListTransfers lista vigente completa de transferencias.
func (uc *StockUseCase) ListTransfers(ctx context.Context) ([]dto.TransferResponse, error) {
	items, err := uc.transfers.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(items))
	for _, t := range items {
		out = append(out, *toTransferResponse(t))
	}
	return out, nil
}

// ── Ajustes ──────────────────────────────────────────────────────────────────

// CreateAdjustment valida y persiste un ajuste con su monto total calculado.
func (uc *StockUseCase) CreateAdjustment(ctx context.Context, in dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	a, err := buildAdjustment(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	id, err := uc.adjustments.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id
	return toAdjustmentResponse(a), nil
}

// UpdateAdjustment reemplaza el ajuste recalculando el monto.
func (uc *StockUseCase) UpdateAdjustment(ctx context.Context, id string, in dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	current, err := uc.adjustments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a, err := buildAdjustment(in)
	if err != nil {
		return nil, err
	}
	a.ID = id
	a.CreatedAt = current.CreatedAt
	a.UpdatedAt = time.Now()
	if err := uc.adjustments.Update(ctx, id, a); err != nil {
		return nil, err
	}
	return toAdjustmentResponse(a), nil
}

// GetAdjustment obtiene un ajuste por id.
func (uc *StockUseCase) GetAdjustment(ctx context.Context, id string) (*dto.AdjustmentResponse, error) {
	a, err := uc.adjustments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponse(a), nil
}

// DeleteAdjustment elimina el ajuste.
func (uc *StockUseCase) DeleteAdjustment(ctx context.Context, id string) error {
	return uc.adjustments.Delete(ctx, id)
}

// ListAdjustments lista vigente completa de ajustes.
func (uc *StockUseCase) ListAdjustments(ctx context.Context) ([]dto.AdjustmentResponse, error) {
	items, err := uc.adjustments.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdjustmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, *toAdjustmentResponse(a))
	}
	return out, nil
}

// ── Niveles ──────────────────────────────────────────────────────────────────

// ListLevels lista vigente de niveles de stock.
func (uc *StockUseCase) ListLevels(ctx context.Context) ([]dto.StockLevelResponse, error) {
	items, err := uc.levels.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelResponse, 0, len(items))
	for _, l := range items {
		out = append(out, dto.StockLevelResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Location:  l.Location,
			Quantity:  l.Quantity,
			UpdatedAt: l.UpdatedAt,
		})
	}
	return out, nil
}

// ── Construcción y mapeo ─────────────────────────────────────────────────────

func buildLines(in []dto.LineItemRequest) ([]entity.LineItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrEmptyLines
	}
	lines := make([]entity.LineItem, 0, len(in))
	for _, l := range in {
		if l.Quantity.IsNegative() || l.UnitPrice.IsNegative() || l.Discount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.LineItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Discount:    l.Discount,
		})
	}
	return lines, nil
}

func buildTransfer(in dto.TransferRequest) (entity.StockTransfer, error) {
	var zero entity.StockTransfer
	lines, err := buildLines(in.Lines)
	if err != nil {
		return zero, err
	}
	if in.ShippingCharges.IsNegative() {
		return zero, domain.ErrInvalidInput
	}
	itemsTotal := pricing.RecalculateLines(lines)
	return entity.StockTransfer{
		Date:            in.Date,
		ReferenceNo:     in.ReferenceNo,
		FromLocation:    in.FromLocation,
		ToLocation:      in.ToLocation,
		Status:          in.Status,
		Lines:           lines,
		ShippingCharges: in.ShippingCharges,
		ItemsTotal:      itemsTotal,
		GrandTotal:      itemsTotal.Add(in.ShippingCharges),
		Notes:           in.Notes,
	}, nil
}

func buildAdjustment(in dto.AdjustmentRequest) (entity.StockAdjustment, error) {
	var zero entity.StockAdjustment
	lines, err := buildLines(in.Lines)
	if err != nil {
		return zero, err
	}
	if in.RecoveredAmount.IsNegative() {
		return zero, domain.ErrInvalidInput
	}
	return entity.StockAdjustment{
		Date:            in.Date,
		ReferenceNo:     in.ReferenceNo,
		Location:        in.Location,
		AdjustmentType:  in.AdjustmentType,
		Lines:           lines,
		TotalAmount:     pricing.RecalculateLines(lines),
		RecoveredAmount: in.RecoveredAmount,
		Reason:          in.Reason,
	}, nil
}

func toLineResponses(lines []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.LineItemResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Discount:    l.Discount,
			Subtotal:    l.Subtotal,
		})
	}
	return out
}

func toTransferResponse(t entity.StockTransfer) *dto.TransferResponse {
	return &dto.TransferResponse{
		ID:              t.ID,
		Date:            t.Date,
		ReferenceNo:     t.ReferenceNo,
		FromLocation:    t.FromLocation,
		ToLocation:      t.ToLocation,
		Status:          t.Status,
		Lines:           toLineResponses(t.Lines),
		ShippingCharges: t.ShippingCharges,
		ItemsTotal:      t.ItemsTotal,
		GrandTotal:      t.GrandTotal,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toAdjustmentResponse(a entity.StockAdjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:              a.ID,
		Date:            a.Date,
		ReferenceNo:     a.ReferenceNo,
		Location:        a.Location,
		AdjustmentType:  a.AdjustmentType,
		Lines:           toLineResponses(a.Lines),
		TotalAmount:     a.TotalAmount,
		RecoveredAmount: a.RecoveredAmount,
		Reason:          a.Reason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
