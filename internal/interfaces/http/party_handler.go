package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// PartyHandler sirve proveedores y clientes: el mismo handler con distinto
// caso de uso y título de reporte.
type PartyHandler struct {
	uc    *usecase.PartyUseCase
	title string
}

// NewPartyHandler construye el handler.
func NewPartyHandler(uc *usecase.PartyUseCase, title string) *PartyHandler {
	return &PartyHandler{uc: uc, title: title}
}

var partyListOptions = listview.Options[dto.PartyResponse]{
	ID: func(p dto.PartyResponse) string { return p.ID },
	Searchable: []func(dto.PartyResponse) string{
		func(p dto.PartyResponse) string { return p.DisplayName },
		func(p dto.PartyResponse) string { return p.Email },
		func(p dto.PartyResponse) string { return p.Mobile },
		func(p dto.PartyResponse) string { return p.TaxNumber },
	},
	Filters: map[string]func(dto.PartyResponse, string) bool{
		"group":       func(p dto.PartyResponse, v string) bool { return p.Group == v },
		"assigned_to": func(p dto.PartyResponse, v string) bool { return p.AssignedTo == v },
	},
	Sorters: map[string]func(a, b dto.PartyResponse) int{
		"display_name": func(a, b dto.PartyResponse) int { return compareFolded(a.DisplayName, b.DisplayName) },
		"email":        func(a, b dto.PartyResponse) int { return compareFolded(a.Email, b.Email) },
		"opening_balance": func(a, b dto.PartyResponse) int {
			return a.OpeningBalance.Cmp(b.OpeningBalance)
		},
		"created_at": func(a, b dto.PartyResponse) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
}

var partyFilterKeys = []string{"group", "assigned_to"}

// Create godoc
// @Summary      Crear proveedor o cliente
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PartyRequest  true  "Datos del contacto"
// @Success      201   {object}  dto.PartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.PartyRequest
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
// @Summary      Obtener contacto por ID
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contacto"
// @Success      200  {object}  dto.PartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar contactos
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre, email, móvil o NIT"
// @Success      200  {object}  dto.PartyListResponse
// @Router       /api/suppliers [get]
func (h *PartyHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, partyFilterKeys...), partyListOptions)
	return c.JSON(dto.PartyListResponse{Items: page, Meta: meta})
}

// Export godoc
// @Summary      Exportar contactos (csv, xlsx, pdf, html)
// @Tags         contacts
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Router       /api/suppliers/export [get]
func (h *PartyHandler) Export(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c, partyFilterKeys...), partyListOptions)
	doc := report.Document{Title: h.title, Columns: []report.Column{
		{Key: "contact_id", Label: "Contact ID"},
		{Key: "display_name", Label: "Name"},
		{Key: "email", Label: "Email"},
		{Key: "mobile", Label: "Mobile"},
		{Key: "tax_number", Label: "Tax Number"},
		{Key: "opening_balance", Label: "Opening Balance"},
		{Key: "city", Label: "City"},
		{Key: "country", Label: "Country"},
	}}
	for _, p := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"contact_id":      p.ContactID,
			"display_name":    p.DisplayName,
			"email":           p.Email,
			"mobile":          p.Mobile,
			"tax_number":      p.TaxNumber,
			"opening_balance": p.OpeningBalance,
			"city":            p.City,
			"country":         p.Country,
		})
	}
	return respondReport(c, doc)
}

// Update godoc
// @Summary      Actualizar contacto
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contacto"
// @Param        body  body  dto.PartyRequest  true  "Contacto completo"
// @Success      200   {object}  dto.PartyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *PartyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.PartyRequest
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
// @Summary      Eliminar contacto
// @Tags         contacts
// @Security     Bearer
// @Param        id  path  string  true  "ID del contacto"
// @Success      204  "Sin contenido"
// @Router       /api/suppliers/{id} [delete]
func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
