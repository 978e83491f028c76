package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
)

// SettingsHandler agrupa las pantallas de configuración del negocio: unidades,
// impuestos, garantías y promociones.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

var unitListOptions = listview.Options[dto.UnitResponse]{
	ID: func(u dto.UnitResponse) string { return u.ID },
	Searchable: []func(dto.UnitResponse) string{
		func(u dto.UnitResponse) string { return u.Name },
		func(u dto.UnitResponse) string { return u.ShortName },
	},
	Sorters: map[string]func(a, b dto.UnitResponse) int{
		"name": func(a, b dto.UnitResponse) int { return compareFolded(a.Name, b.Name) },
	},
}

var taxListOptions = listview.Options[dto.TaxResponse]{
	ID: func(t dto.TaxResponse) string { return t.ID },
	Searchable: []func(dto.TaxResponse) string{
		func(t dto.TaxResponse) string { return t.Name },
	},
	Sorters: map[string]func(a, b dto.TaxResponse) int{
		"name": func(a, b dto.TaxResponse) int { return compareFolded(a.Name, b.Name) },
		"rate": func(a, b dto.TaxResponse) int { return a.Rate.Cmp(b.Rate) },
	},
}

var warrantyListOptions = listview.Options[dto.WarrantyResponse]{
	ID: func(w dto.WarrantyResponse) string { return w.ID },
	Searchable: []func(dto.WarrantyResponse) string{
		func(w dto.WarrantyResponse) string { return w.Name },
	},
	Sorters: map[string]func(a, b dto.WarrantyResponse) int{
		"name": func(a, b dto.WarrantyResponse) int { return compareFolded(a.Name, b.Name) },
	},
}

var discountListOptions = listview.Options[dto.DiscountResponse]{
	ID: func(d dto.DiscountResponse) string { return d.ID },
	Searchable: []func(dto.DiscountResponse) string{
		func(d dto.DiscountResponse) string { return d.Name },
		func(d dto.DiscountResponse) string { return d.Brand },
		func(d dto.DiscountResponse) string { return d.Category },
	},
	Filters: map[string]func(dto.DiscountResponse, string) bool{
		"business_location": func(d dto.DiscountResponse, v string) bool { return d.Location == v },
		"is_active": func(d dto.DiscountResponse, v string) bool {
			return (v == "true") == d.IsActive
		},
	},
	Sorters: map[string]func(a, b dto.DiscountResponse) int{
		"name":      func(a, b dto.DiscountResponse) int { return compareFolded(a.Name, b.Name) },
		"priority":  func(a, b dto.DiscountResponse) int { return a.Priority - b.Priority },
		"starts_at": func(a, b dto.DiscountResponse) int { return a.StartsAt.Compare(b.StartsAt) },
	},
}

// ── Unidades ─────────────────────────────────────────────────────────────────

// CreateUnit godoc
// @Summary      Crear unidad de medida
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnitRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnitResponse
// @Router       /api/units [post]
func (h *SettingsHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.UnitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateUnit(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnits godoc
// @Summary      Listar unidades
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UnitListResponse
// @Router       /api/units [get]
func (h *SettingsHandler) ListUnits(c *fiber.Ctx) error {
	items, err := h.uc.ListUnits(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c), unitListOptions)
	return c.JSON(dto.UnitListResponse{Items: page, Meta: meta})
}

// UpdateUnit godoc
// @Summary      Actualizar unidad
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.UnitRequest  true  "Unidad completa"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id} [put]
func (h *SettingsHandler) UpdateUnit(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UnitRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateUnit(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteUnit godoc
// @Summary      Eliminar unidad
// @Tags         settings
// @Security     Bearer
// @Param        id  path  string  true  "ID de la unidad"
// @Success      204  "Sin contenido"
// @Router       /api/units/{id} [delete]
func (h *SettingsHandler) DeleteUnit(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteUnit(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Impuestos ────────────────────────────────────────────────────────────────

// CreateTax godoc
// @Summary      Crear tasa de impuesto
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TaxRequest  true  "Nombre y tasa"
// @Success      201   {object}  dto.TaxResponse
// @Router       /api/taxes [post]
func (h *SettingsHandler) CreateTax(c *fiber.Ctx) error {
	var in dto.TaxRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateTax(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTaxes godoc
// @Summary      Listar tasas de impuesto
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaxListResponse
// @Router       /api/taxes [get]
func (h *SettingsHandler) ListTaxes(c *fiber.Ctx) error {
	items, err := h.uc.ListTaxes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c), taxListOptions)
	return c.JSON(dto.TaxListResponse{Items: page, Meta: meta})
}

// UpdateTax godoc
// @Summary      Actualizar tasa de impuesto
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tasa"
// @Param        body  body  dto.TaxRequest  true  "Tasa completa"
// @Success      200   {object}  dto.TaxResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/taxes/{id} [put]
func (h *SettingsHandler) UpdateTax(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.TaxRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateTax(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteTax godoc
// @Summary      Eliminar tasa de impuesto
// @Tags         settings
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tasa"
// @Success      204  "Sin contenido"
// @Router       /api/taxes/{id} [delete]
func (h *SettingsHandler) DeleteTax(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteTax(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Garantías ────────────────────────────────────────────────────────────────

// CreateWarranty godoc
// @Summary      Crear garantía
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarrantyRequest  true  "Datos de la garantía"
// @Success      201   {object}  dto.WarrantyResponse
// @Router       /api/warranties [post]
func (h *SettingsHandler) CreateWarranty(c *fiber.Ctx) error {
	var in dto.WarrantyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateWarranty(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListWarranties godoc
// @Summary      Listar garantías
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarrantyListResponse
// @Router       /api/warranties [get]
func (h *SettingsHandler) ListWarranties(c *fiber.Ctx) error {
	items, err := h.uc.ListWarranties(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c), warrantyListOptions)
	return c.JSON(dto.WarrantyListResponse{Items: page, Meta: meta})
}

// UpdateWarranty godoc
// @Summary      Actualizar garantía
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la garantía"
// @Param        body  body  dto.WarrantyRequest  true  "Garantía completa"
// @Success      200   {object}  dto.WarrantyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warranties/{id} [put]
func (h *SettingsHandler) UpdateWarranty(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.WarrantyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateWarranty(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteWarranty godoc
// @Summary      Eliminar garantía
// @Tags         settings
// @Security     Bearer
// @Param        id  path  string  true  "ID de la garantía"
// @Success      204  "Sin contenido"
// @Router       /api/warranties/{id} [delete]
func (h *SettingsHandler) DeleteWarranty(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteWarranty(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Promociones ──────────────────────────────────────────────────────────────

// CreateDiscount godoc
// @Summary      Crear promoción
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DiscountRequest  true  "Datos de la promoción"
// @Success      201   {object}  dto.DiscountResponse
// @Router       /api/discounts [post]
func (h *SettingsHandler) CreateDiscount(c *fiber.Ctx) error {
	var in dto.DiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateDiscount(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDiscounts godoc
// @Summary      Listar promociones
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DiscountListResponse
// @Router       /api/discounts [get]
func (h *SettingsHandler) ListDiscounts(c *fiber.Ctx) error {
	items, err := h.uc.ListDiscounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, "business_location", "is_active"), discountListOptions)
	return c.JSON(dto.DiscountListResponse{Items: page, Meta: meta})
}

// UpdateDiscount godoc
// @Summary      Actualizar promoción
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.DiscountRequest  true  "Promoción completa"
// @Success      200   {object}  dto.DiscountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/discounts/{id} [put]
func (h *SettingsHandler) UpdateDiscount(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.DiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDiscount(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteDiscount godoc
// @Summary      Eliminar promoción
// @Tags         settings
// @Security     Bearer
// @Param        id  path  string  true  "ID de la promoción"
// @Success      204  "Sin contenido"
// @Router       /api/discounts/{id} [delete]
func (h *SettingsHandler) DeleteDiscount(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteDiscount(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
