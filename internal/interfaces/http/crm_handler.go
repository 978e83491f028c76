package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// CRMHandler maneja leads y seguimientos agendados.
type CRMHandler struct {
	uc *usecase.CRMUseCase
}

// NewCRMHandler construye el handler.
func NewCRMHandler(uc *usecase.CRMUseCase) *CRMHandler {
	return &CRMHandler{uc: uc}
}

var leadListOptions = listview.Options[dto.LeadResponse]{
	ID: func(l dto.LeadResponse) string { return l.ID },
	Searchable: []func(dto.LeadResponse) string{
		func(l dto.LeadResponse) string { return l.Name },
		func(l dto.LeadResponse) string { return l.Email },
		func(l dto.LeadResponse) string { return l.Mobile },
	},
	Filters: map[string]func(dto.LeadResponse, string) bool{
		"source":      func(l dto.LeadResponse, v string) bool { return l.Source == v },
		"life_stage":  func(l dto.LeadResponse, v string) bool { return l.LifeStage == v },
		"assigned_to": func(l dto.LeadResponse, v string) bool { return l.AssignedTo == v },
	},
	Sorters: map[string]func(a, b dto.LeadResponse) int{
		"name":       func(a, b dto.LeadResponse) int { return compareFolded(a.Name, b.Name) },
		"created_at": func(a, b dto.LeadResponse) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
}

var followUpListOptions = listview.Options[dto.FollowUpResponse]{
	ID: func(f dto.FollowUpResponse) string { return f.ID },
	Searchable: []func(dto.FollowUpResponse) string{
		func(f dto.FollowUpResponse) string { return f.Title },
		func(f dto.FollowUpResponse) string { return f.Contact },
	},
	Filters: map[string]func(dto.FollowUpResponse, string) bool{
		"status":   func(f dto.FollowUpResponse, v string) bool { return f.Status == v },
		"category": func(f dto.FollowUpResponse, v string) bool { return f.Category == v },
	},
	Sorters: map[string]func(a, b dto.FollowUpResponse) int{
		"title":    func(a, b dto.FollowUpResponse) int { return compareFolded(a.Title, b.Title) },
		"start_at": func(a, b dto.FollowUpResponse) int { return a.StartAt.Compare(b.StartAt) },
	},
}

var leadFilterKeys = []string{"source", "life_stage", "assigned_to"}

// ── Leads ────────────────────────────────────────────────────────────────────

// CreateLead godoc
// @Summary      Crear lead
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LeadRequest  true  "Datos del lead"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *CRMHandler) CreateLead(c *fiber.Ctx) error {
	var in dto.LeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateLead(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetLead godoc
// @Summary      Obtener lead por ID
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *CRMHandler) GetLead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetLead(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLeads godoc
// @Summary      Listar leads
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LeadListResponse
// @Router       /api/leads [get]
func (h *CRMHandler) ListLeads(c *fiber.Ctx) error {
	items, err := h.uc.ListLeads(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, leadFilterKeys...), leadListOptions)
	return c.JSON(dto.LeadListResponse{Items: page, Meta: meta})
}

// ExportLeads godoc
// @Summary      Exportar leads (csv, xlsx, pdf, html)
// @Tags         crm
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Router       /api/leads/export [get]
func (h *CRMHandler) ExportLeads(c *fiber.Ctx) error {
	items, err := h.uc.ListLeads(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c, leadFilterKeys...), leadListOptions)
	doc := report.Document{Title: "Leads", Columns: []report.Column{
		{Key: "name", Label: "Name"},
		{Key: "email", Label: "Email"},
		{Key: "mobile", Label: "Mobile"},
		{Key: "source", Label: "Source"},
		{Key: "life_stage", Label: "Life Stage"},
		{Key: "assigned_to", Label: "Assigned To"},
	}}
	for _, l := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"name":        l.Name,
			"email":       l.Email,
			"mobile":      l.Mobile,
			"source":      l.Source,
			"life_stage":  l.LifeStage,
			"assigned_to": l.AssignedTo,
		})
	}
	return respondReport(c, doc)
}

// UpdateLead godoc
// @Summary      Actualizar lead
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.LeadRequest  true  "Lead completo"
// @Success      200   {object}  dto.LeadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [put]
func (h *CRMHandler) UpdateLead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.LeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateLead(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteLead godoc
// @Summary      Eliminar lead
// @Tags         crm
// @Security     Bearer
// @Param        id  path  string  true  "ID del lead"
// @Success      204  "Sin contenido"
// @Router       /api/leads/{id} [delete]
func (h *CRMHandler) DeleteLead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteLead(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Seguimientos ─────────────────────────────────────────────────────────────

// CreateFollowUp godoc
// @Summary      Agendar seguimiento
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FollowUpRequest  true  "Datos del seguimiento"
// @Success      201   {object}  dto.FollowUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/follow-ups [post]
func (h *CRMHandler) CreateFollowUp(c *fiber.Ctx) error {
	var in dto.FollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateFollowUp(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetFollowUp godoc
// @Summary      Obtener seguimiento por ID
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del seguimiento"
// @Success      200  {object}  dto.FollowUpResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/follow-ups/{id} [get]
func (h *CRMHandler) GetFollowUp(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetFollowUp(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListFollowUps godoc
// @Summary      Listar seguimientos
// @Tags         crm
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FollowUpListResponse
// @Router       /api/follow-ups [get]
func (h *CRMHandler) ListFollowUps(c *fiber.Ctx) error {
	items, err := h.uc.ListFollowUps(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, "status", "category"), followUpListOptions)
	return c.JSON(dto.FollowUpListResponse{Items: page, Meta: meta})
}

// UpdateFollowUp godoc
// @Summary      Actualizar seguimiento
// @Tags         crm
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del seguimiento"
// @Param        body  body  dto.FollowUpRequest  true  "Seguimiento completo"
// @Success      200   {object}  dto.FollowUpResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/follow-ups/{id} [put]
func (h *CRMHandler) UpdateFollowUp(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.FollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateFollowUp(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteFollowUp godoc
// @Summary      Eliminar seguimiento
// @Tags         crm
// @Security     Bearer
// @Param        id  path  string  true  "ID del seguimiento"
// @Success      204  "Sin contenido"
// @Router       /api/follow-ups/{id} [delete]
func (h *CRMHandler) DeleteFollowUp(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteFollowUp(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
