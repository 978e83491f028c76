package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// SettingsUseCase casos de uso de los catálogos con forma propia: unidades,
// impuestos, garantías y promociones.
type SettingsUseCase struct {
	units      *service.Service[entity.Unit]
	taxes      *service.Service[entity.Tax]
	warranties *service.Service[entity.Warranty]
	discounts  *service.Service[entity.Discount]
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(
	units *service.Service[entity.Unit],
	taxes *service.Service[entity.Tax],
	warranties *service.Service[entity.Warranty],
	discounts *service.Service[entity.Discount],
) *SettingsUseCase {
	return &SettingsUseCase{units: units, taxes: taxes, warranties: warranties, discounts: discounts}
}

// ── Unidades ─────────────────────────────────────────────────────────────────

// CreateUnit agrega una unidad de medida.
func (uc *SettingsUseCase) CreateUnit(ctx context.Context, in dto.UnitRequest) (*dto.UnitResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	u := entity.Unit{Name: in.Name, ShortName: in.ShortName, AllowDecimal: in.AllowDecimal, CreatedAt: now, UpdatedAt: now}
	id, err := uc.units.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return toUnitResponse(u), nil
}

// UpdateUnit reemplaza la unidad.
func (uc *SettingsUseCase) UpdateUnit(ctx context.Context, id string, in dto.UnitRequest) (*dto.UnitResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.units.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u := entity.Unit{ID: id, Name: in.Name, ShortName: in.ShortName, AllowDecimal: in.AllowDecimal, CreatedAt: current.CreatedAt, UpdatedAt: time.Now()}
	if err := uc.units.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return toUnitResponse(u), nil
}

// DeleteUnit elimina la unidad.
func (uc *SettingsUseCase) DeleteUnit(ctx context.Context, id string) error {
	return uc.units.Delete(ctx, id)
}

// ListUnits lista vigente de unidades.
func (uc *SettingsUseCase) ListUnits(ctx context.Context) ([]dto.UnitResponse, error) {
	items, err := uc.units.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(items))
	for _, u := range items {
		out = append(out, *toUnitResponse(u))
	}
	return out, nil
}

// ── Impuestos ────────────────────────────────────────────────────────────────

// CreateTax agrega una tasa de impuesto. Tasa negativa -> ErrInvalidInput.
func (uc *SettingsUseCase) CreateTax(ctx context.Context, in dto.TaxRequest) (*dto.TaxResponse, error) {
	if in.Name == "" || in.Rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := entity.Tax{Name: in.Name, Rate: in.Rate, CreatedAt: now, UpdatedAt: now}
	id, err := uc.taxes.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return toTaxResponse(t), nil
}

// UpdateTax reemplaza la tasa.
func (uc *SettingsUseCase) UpdateTax(ctx context.Context, id string, in dto.TaxRequest) (*dto.TaxResponse, error) {
	if in.Name == "" || in.Rate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.taxes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t := entity.Tax{ID: id, Name: in.Name, Rate: in.Rate, CreatedAt: current.CreatedAt, UpdatedAt: time.Now()}
	if err := uc.taxes.Update(ctx, id, t); err != nil {
		return nil, err
	}
	return toTaxResponse(t), nil
}

// DeleteTax elimina la tasa.
func (uc *SettingsUseCase) DeleteTax(ctx context.Context, id string) error {
	return uc.taxes.Delete(ctx, id)
}

// ListTaxes lista vigente de tasas.
func (uc *SettingsUseCase) ListTaxes(ctx context.Context) ([]dto.TaxResponse, error) {
	items, err := uc.taxes.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaxResponse, 0, len(items))
	for _, t := range items {
		out = append(out, *toTaxResponse(t))
	}
	return out, nil
}

// ── Garantías ────────────────────────────────────────────────────────────────

// CreateWarranty agrega una garantía.
func (uc *SettingsUseCase) CreateWarranty(ctx context.Context, in dto.WarrantyRequest) (*dto.WarrantyResponse, error) {
	if in.Name == "" || in.Duration < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	w := entity.Warranty{Name: in.Name, Description: in.Description, Duration: in.Duration, DurationType: in.DurationType, CreatedAt: now, UpdatedAt: now}
	id, err := uc.warranties.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	w.ID = id
	return toWarrantyResponse(w), nil
}

// UpdateWarranty reemplaza la garantía.
func (uc *SettingsUseCase) UpdateWarranty(ctx context.Context, id string, in dto.WarrantyRequest) (*dto.WarrantyResponse, error) {
	if in.Name == "" || in.Duration < 0 {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.warranties.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	w := entity.Warranty{ID: id, Name: in.Name, Description: in.Description, Duration: in.Duration, DurationType: in.DurationType, CreatedAt: current.CreatedAt, UpdatedAt: time.Now()}
	if err := uc.warranties.Update(ctx, id, w); err != nil {
		return nil, err
	}
	return toWarrantyResponse(w), nil
}

// DeleteWarranty elimina la garantía.
func (uc *SettingsUseCase) DeleteWarranty(ctx context.Context, id string) error {
	return uc.warranties.Delete(ctx, id)
}

// ListWarranties lista vigente de garantías.
func (uc *SettingsUseCase) ListWarranties(ctx context.Context) ([]dto.WarrantyResponse, error) {
	items, err := uc.warranties.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarrantyResponse, 0, len(items))
	for _, w := range items {
		out = append(out, *toWarrantyResponse(w))
	}
	return out, nil
}

// ── Promociones ──────────────────────────────────────────────────────────────

// CreateDiscount agrega una promoción.
func (uc *SettingsUseCase) CreateDiscount(ctx context.Context, in dto.DiscountRequest) (*dto.DiscountResponse, error) {
	if in.Name == "" || in.DiscountAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	d := discountFromRequest(in)
	d.CreatedAt = now
	d.UpdatedAt = now
	id, err := uc.discounts.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return toDiscountResponse(d), nil
}

// UpdateDiscount reemplaza la promoción.
func (uc *SettingsUseCase) UpdateDiscount(ctx context.Context, id string, in dto.DiscountRequest) (*dto.DiscountResponse, error) {
	if in.Name == "" || in.DiscountAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.discounts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d := discountFromRequest(in)
	d.ID = id
	d.CreatedAt = current.CreatedAt
	d.UpdatedAt = time.Now()
	if err := uc.discounts.Update(ctx, id, d); err != nil {
		return nil, err
	}
	return toDiscountResponse(d), nil
}

// DeleteDiscount elimina la promoción.
func (uc *SettingsUseCase) DeleteDiscount(ctx context.Context, id string) error {
	return uc.discounts.Delete(ctx, id)
}

// ListDiscounts lista vigente de promociones.
func (uc *SettingsUseCase) ListDiscounts(ctx context.Context) ([]dto.DiscountResponse, error) {
	items, err := uc.discounts.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DiscountResponse, 0, len(items))
	for _, d := range items {
		out = append(out, *toDiscountResponse(d))
	}
	return out, nil
}

// ── Mapeo ────────────────────────────────────────────────────────────────────

func toUnitResponse(u entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{ID: u.ID, Name: u.Name, ShortName: u.ShortName, AllowDecimal: u.AllowDecimal, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func toTaxResponse(t entity.Tax) *dto.TaxResponse {
	return &dto.TaxResponse{ID: t.ID, Name: t.Name, Rate: t.Rate, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func toWarrantyResponse(w entity.Warranty) *dto.WarrantyResponse {
	return &dto.WarrantyResponse{ID: w.ID, Name: w.Name, Description: w.Description, Duration: w.Duration, DurationType: w.DurationType, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

func discountFromRequest(in dto.DiscountRequest) entity.Discount {
	return entity.Discount{
		Name:           in.Name,
		Brand:          in.Brand,
		Category:       in.Category,
		Location:       in.Location,
		Priority:       in.Priority,
		DiscountType:   in.DiscountType,
		DiscountAmount: in.DiscountAmount,
		StartsAt:       in.StartsAt,
		EndsAt:         in.EndsAt,
		IsActive:       in.IsActive,
	}
}

func toDiscountResponse(d entity.Discount) *dto.DiscountResponse {
	return &dto.DiscountResponse{
		ID:             d.ID,
		Name:           d.Name,
		Brand:          d.Brand,
		Category:       d.Category,
		Location:       d.Location,
		Priority:       d.Priority,
		DiscountType:   d.DiscountType,
		DiscountAmount: d.DiscountAmount,
		StartsAt:       d.StartsAt,
		EndsAt:         d.EndsAt,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
