package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// TradeHandler maneja una familia de documentos comerciales (ventas, compras,
// borradores, cotizaciones, órdenes, requisiciones). El mismo handler sirve
// las seis rutas; cambia el caso de uso y el título del reporte.
type TradeHandler struct {
	uc    *usecase.TradeUseCase
	title string
}

// NewTradeHandler construye el handler para una colección de documentos.
func NewTradeHandler(uc *usecase.TradeUseCase, title string) *TradeHandler {
	return &TradeHandler{uc: uc, title: title}
}

var tradeListOptions = listview.Options[dto.TradeResponse]{
	ID: func(t dto.TradeResponse) string { return t.ID },
	Searchable: []func(dto.TradeResponse) string{
		func(t dto.TradeResponse) string { return t.Party },
		func(t dto.TradeResponse) string { return t.ReferenceNo },
	},
	Filters: map[string]func(dto.TradeResponse, string) bool{
		"business_location": func(t dto.TradeResponse, v string) bool { return t.Location == v },
		"status":            func(t dto.TradeResponse, v string) bool { return t.Status == v },
		"payment_status":    func(t dto.TradeResponse, v string) bool { return t.PaymentStatus == v },
	},
	Sorters: map[string]func(a, b dto.TradeResponse) int{
		"party":       func(a, b dto.TradeResponse) int { return compareFolded(a.Party, b.Party) },
		"date":        func(a, b dto.TradeResponse) int { return a.Date.Compare(b.Date) },
		"grand_total": func(a, b dto.TradeResponse) int { return a.GrandTotal.Cmp(b.GrandTotal) },
		"payment_due": func(a, b dto.TradeResponse) int { return a.PaymentDue.Cmp(b.PaymentDue) },
	},
}

var tradeReportColumns = []report.Column{
	{Key: "date", Label: "Date"},
	{Key: "reference_no", Label: "Reference No"},
	{Key: "party", Label: "Contact"},
	{Key: "business_location", Label: "Location"},
	{Key: "status", Label: "Status"},
	{Key: "payment_status", Label: "Payment Status"},
	{Key: "grand_total", Label: "Grand Total"},
	{Key: "payment_due", Label: "Payment Due"},
}

var tradeFilterKeys = []string{"business_location", "status", "payment_status"}

// Create godoc
// @Summary      Crear documento comercial
// @Tags         trades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TradeRequest  true  "Documento con sus líneas"
// @Success      201   {object}  dto.TradeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sells [post]
func (h *TradeHandler) Create(c *fiber.Ctx) error {
	var in dto.TradeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener documento por ID
// @Tags         trades
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.TradeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sells/{id} [get]
func (h *TradeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar documentos comerciales
// @Tags         trades
// @Security     Bearer
// @Produce      json
// @Param        search             query  string  false  "Búsqueda por contacto o referencia"
// @Param        business_location  query  string  false  "Filtro por ubicación"
// @Param        status             query  string  false  "Filtro por estado"
// @Param        payment_status     query  string  false  "Filtro por estado de pago"
// @Param        sort_key           query  string  false  "Columna de orden"
// @Param        sort_dir           query  string  false  "asc | desc"
// @Param        page               query  int     false  "Página (1-based)"
// @Param        page_size          query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.TradeListResponse
// @Router       /api/sells [get]
func (h *TradeHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, tradeFilterKeys...), tradeListOptions)
	return c.JSON(dto.TradeListResponse{Items: page, Meta: meta})
}

// Export godoc
// @Summary      Exportar documentos comerciales (csv, xlsx, pdf, html)
// @Tags         trades
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Router       /api/sells/export [get]
func (h *TradeHandler) Export(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c, tradeFilterKeys...), tradeListOptions)
	doc := report.Document{Title: h.title, Columns: tradeReportColumns}
	for _, t := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"date":              t.Date,
			"reference_no":      t.ReferenceNo,
			"party":             t.Party,
			"business_location": t.Location,
			"status":            t.Status,
			"payment_status":    t.PaymentStatus,
			"grand_total":       t.GrandTotal,
			"payment_due":       t.PaymentDue,
		})
	}
	return respondReport(c, doc)
}

// Update godoc
// @Summary      Actualizar documento comercial
// @Tags         trades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.TradeRequest  true  "Documento completo"
// @Success      200   {object}  dto.TradeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sells/{id} [put]
func (h *TradeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.TradeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar documento comercial
// @Tags         trades
// @Security     Bearer
// @Param        id  path  string  true  "ID del documento"
// @Success      204  "Sin contenido"
// @Router       /api/sells/{id} [delete]
func (h *TradeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ConvertToSale godoc
// @Summary      Convertir cotización o borrador en venta
// @Tags         trades
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento origen"
// @Success      201  {object}  dto.TradeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/convert [post]
func (h *TradeHandler) ConvertToSale(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.ConvertToSale(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
