package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// ExpenseHandler maneja las peticiones HTTP de gastos.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

var expenseListOptions = listview.Options[dto.ExpenseResponse]{
	ID: func(e dto.ExpenseResponse) string { return e.ID },
	Searchable: []func(dto.ExpenseResponse) string{
		func(e dto.ExpenseResponse) string { return e.ReferenceNo },
		func(e dto.ExpenseResponse) string { return e.Category },
		func(e dto.ExpenseResponse) string { return e.ExpenseFor },
	},
	Filters: map[string]func(dto.ExpenseResponse, string) bool{
		"category":          func(e dto.ExpenseResponse, v string) bool { return e.Category == v },
		"business_location": func(e dto.ExpenseResponse, v string) bool { return e.Location == v },
		"payment_method":    func(e dto.ExpenseResponse, v string) bool { return e.PaymentMethod == v },
	},
	Sorters: map[string]func(a, b dto.ExpenseResponse) int{
		"date":     func(a, b dto.ExpenseResponse) int { return a.Date.Compare(b.Date) },
		"amount":   func(a, b dto.ExpenseResponse) int { return a.Amount.Cmp(b.Amount) },
		"category": func(a, b dto.ExpenseResponse) int { return compareFolded(a.Category, b.Category) },
	},
}

var expenseFilterKeys = []string{"category", "business_location", "payment_method"}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
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
// @Summary      Obtener gasto por ID
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, expenseFilterKeys...), expenseListOptions)
	return c.JSON(dto.ExpenseListResponse{Items: page, Meta: meta})
}

// Export godoc
// @Summary      Exportar gastos (csv, xlsx, pdf, html)
// @Tags         expenses
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Router       /api/expenses/export [get]
func (h *ExpenseHandler) Export(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c, expenseFilterKeys...), expenseListOptions)
	doc := report.Document{Title: "Expenses", Columns: []report.Column{
		{Key: "date", Label: "Date"},
		{Key: "reference_no", Label: "Reference No"},
		{Key: "category", Label: "Expense Category"},
		{Key: "business_location", Label: "Location"},
		{Key: "payment_method", Label: "Payment Method"},
		{Key: "amount", Label: "Total Amount"},
		{Key: "is_refund", Label: "Refund"},
	}}
	for _, e := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"date":              e.Date,
			"reference_no":      e.ReferenceNo,
			"category":          e.Category,
			"business_location": e.Location,
			"payment_method":    e.PaymentMethod,
			"amount":            e.Amount,
			"is_refund":         e.IsRefund,
		})
	}
	return respondReport(c, doc)
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.ExpenseRequest  true  "Gasto completo"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.ExpenseRequest
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
// @Summary      Eliminar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID del gasto"
// @Success      204  "Sin contenido"
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
