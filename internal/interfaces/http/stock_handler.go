package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// StockHandler maneja transferencias, ajustes y niveles de stock.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

var transferListOptions = listview.Options[dto.TransferResponse]{
	ID: func(t dto.TransferResponse) string { return t.ID },
	Searchable: []func(dto.TransferResponse) string{
		func(t dto.TransferResponse) string { return t.ReferenceNo },
		func(t dto.TransferResponse) string { return t.FromLocation },
		func(t dto.TransferResponse) string { return t.ToLocation },
	},
	Filters: map[string]func(dto.TransferResponse, string) bool{
		"status":        func(t dto.TransferResponse, v string) bool { return t.Status == v },
		"location_from": func(t dto.TransferResponse, v string) bool { return t.FromLocation == v },
		"location_to":   func(t dto.TransferResponse, v string) bool { return t.ToLocation == v },
	},
	Sorters: map[string]func(a, b dto.TransferResponse) int{
		"date":        func(a, b dto.TransferResponse) int { return a.Date.Compare(b.Date) },
		"grand_total": func(a, b dto.TransferResponse) int { return a.GrandTotal.Cmp(b.GrandTotal) },
	},
}

var adjustmentListOptions = listview.Options[dto.AdjustmentResponse]{
	ID: func(a dto.AdjustmentResponse) string { return a.ID },
	Searchable: []func(dto.AdjustmentResponse) string{
		func(a dto.AdjustmentResponse) string { return a.ReferenceNo },
		func(a dto.AdjustmentResponse) string { return a.Location },
	},
	Filters: map[string]func(dto.AdjustmentResponse, string) bool{
		"business_location": func(a dto.AdjustmentResponse, v string) bool { return a.Location == v },
		"adjustment_type":   func(a dto.AdjustmentResponse, v string) bool { return a.AdjustmentType == v },
	},
	Sorters: map[string]func(a, b dto.AdjustmentResponse) int{
		"date":         func(a, b dto.AdjustmentResponse) int { return a.Date.Compare(b.Date) },
		"total_amount": func(a, b dto.AdjustmentResponse) int { return a.TotalAmount.Cmp(b.TotalAmount) },
	},
}

var stockLevelListOptions = listview.Options[dto.StockLevelResponse]{
	ID: func(l dto.StockLevelResponse) string { return l.ID },
	Searchable: []func(dto.StockLevelResponse) string{
		func(l dto.StockLevelResponse) string { return l.ProductID },
		func(l dto.StockLevelResponse) string { return l.Location },
	},
	Filters: map[string]func(dto.StockLevelResponse, string) bool{
		"business_location": func(l dto.StockLevelResponse, v string) bool { return l.Location == v },
		"product_id":        func(l dto.StockLevelResponse, v string) bool { return l.ProductID == v },
	},
	Sorters: map[string]func(a, b dto.StockLevelResponse) int{
		"quantity": func(a, b dto.StockLevelResponse) int { return a.Quantity.Cmp(b.Quantity) },
	},
}

// ── Transferencias ───────────────────────────────────────────────────────────

// CreateTransfer godoc
// @Summary      Crear transferencia de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Transferencia con sus líneas"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-transfers [post]
func (h *StockHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateTransfer(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTransfer godoc
// @Summary      Obtener transferencia por ID
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transferencia"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-transfers/{id} [get]
func (h *StockHandler) GetTransfer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetTransfer(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListTransfers godoc
// @Summary      Listar transferencias
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransferListResponse
// @Router       /api/stock-transfers [get]
func (h *StockHandler) ListTransfers(c *fiber.Ctx) error {
	items, err := h.uc.ListTransfers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, "status", "location_from", "location_to"), transferListOptions)
	return c.JSON(dto.TransferListResponse{Items: page, Meta: meta})
}

// ExportTransfers godoc
// @Summary      Exportar transferencias (csv, xlsx, pdf, html)
// @Tags         stock
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Router       /api/stock-transfers/export [get]
func (h *StockHandler) ExportTransfers(c *fiber.Ctx) error {
	items, err := h.uc.ListTransfers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c, "status", "location_from", "location_to"), transferListOptions)
	doc := report.Document{Title: "Stock Transfers", Columns: []report.Column{
		{Key: "date", Label: "Date"},
		{Key: "reference_no", Label: "Reference No"},
		{Key: "location_from", Label: "Location (From)"},
		{Key: "location_to", Label: "Location (To)"},
		{Key: "status", Label: "Status"},
		{Key: "shipping_charges", Label: "Shipping Charges"},
		{Key: "grand_total", Label: "Grand Total"},
	}}
	for _, t := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"date":             t.Date,
			"reference_no":     t.ReferenceNo,
			"location_from":    t.FromLocation,
			"location_to":      t.ToLocation,
			"status":           t.Status,
			"shipping_charges": t.ShippingCharges,
			"grand_total":      t.GrandTotal,
		})
	}
	return respondReport(c, doc)
}

// UpdateTransfer godoc
// @Summary      Actualizar transferencia
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transferencia"
// @Param        body  body  dto.TransferRequest  true  "Transferencia completa"
// @Success      200   {object}  dto.TransferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-transfers/{id} [put]
func (h *StockHandler) UpdateTransfer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateTransfer(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteTransfer godoc
// @Summary      Eliminar transferencia
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID de la transferencia"
// @Success      204  "Sin contenido"
// @Router       /api/stock-transfers/{id} [delete]
func (h *StockHandler) DeleteTransfer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteTransfer(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Ajustes ──────────────────────────────────────────────────────────────────

// CreateAdjustment godoc
// @Summary      Crear ajuste de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "Ajuste con sus líneas"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *StockHandler) CreateAdjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateAdjustment(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAdjustment godoc
// @Summary      Obtener ajuste por ID
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [get]
func (h *StockHandler) GetAdjustment(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetAdjustment(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAdjustments godoc
// @Summary      Listar ajustes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdjustmentListResponse
// @Router       /api/adjustments [get]
func (h *StockHandler) ListAdjustments(c *fiber.Ctx) error {
	items, err := h.uc.ListAdjustments(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, "business_location", "adjustment_type"), adjustmentListOptions)
	return c.JSON(dto.AdjustmentListResponse{Items: page, Meta: meta})
}

// ExportAdjustments godoc
// @Summary      Exportar ajustes (csv, xlsx, pdf, html)
// @Tags         stock
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Router       /api/adjustments/export [get]
func (h *StockHandler) ExportAdjustments(c *fiber.Ctx) error {
	items, err := h.uc.ListAdjustments(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c, "business_location", "adjustment_type"), adjustmentListOptions)
	doc := report.Document{Title: "Stock Adjustments", Columns: []report.Column{
		{Key: "date", Label: "Date"},
		{Key: "reference_no", Label: "Reference No"},
		{Key: "business_location", Label: "Location"},
		{Key: "adjustment_type", Label: "Adjustment Type"},
		{Key: "total_amount", Label: "Total Amount"},
		{Key: "recovered_amount", Label: "Total Amount Recovered"},
		{Key: "reason", Label: "Reason"},
	}}
	for _, a := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"date":              a.Date,
			"reference_no":      a.ReferenceNo,
			"business_location": a.Location,
			"adjustment_type":   a.AdjustmentType,
			"total_amount":      a.TotalAmount,
			"recovered_amount":  a.RecoveredAmount,
			"reason":            a.Reason,
		})
	}
	return respondReport(c, doc)
}

// UpdateAdjustment godoc
// @Summary      Actualizar ajuste
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ajuste"
// @Param        body  body  dto.AdjustmentRequest  true  "Ajuste completo"
// @Success      200   {object}  dto.AdjustmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [put]
func (h *StockHandler) UpdateAdjustment(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateAdjustment(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteAdjustment godoc
// @Summary      Eliminar ajuste
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID del ajuste"
// @Success      204  "Sin contenido"
// @Router       /api/adjustments/{id} [delete]
func (h *StockHandler) DeleteAdjustment(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteAdjustment(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Niveles ──────────────────────────────────────────────────────────────────

// ListLevels godoc
// @Summary      Listar niveles de stock por producto y ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockLevelListResponse
// @Router       /api/stock-levels [get]
func (h *StockHandler) ListLevels(c *fiber.Ctx) error {
	items, err := h.uc.ListLevels(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, "business_location", "product_id"), stockLevelListOptions)
	return c.JSON(dto.StockLevelListResponse{Items: page, Meta: meta})
}
