package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// CatalogHandler sirve los catálogos simples (marcas, categorías, ubicaciones,
// grupos de clientes, fuentes, etapas de vida, variaciones, categorías de
// gasto). El mismo handler se monta una vez por colección.
type CatalogHandler struct {
	uc    *usecase.CatalogUseCase
	title string
}

// NewCatalogHandler construye el handler para un catálogo concreto.
func NewCatalogHandler(uc *usecase.CatalogUseCase, title string) *CatalogHandler {
	return &CatalogHandler{uc: uc, title: title}
}

var catalogListOptions = listview.Options[dto.NamedRecordResponse]{
	ID: func(r dto.NamedRecordResponse) string { return r.ID },
	Searchable: []func(dto.NamedRecordResponse) string{
		func(r dto.NamedRecordResponse) string { return r.Name },
		func(r dto.NamedRecordResponse) string { return r.Description },
	},
	Sorters: map[string]func(a, b dto.NamedRecordResponse) int{
		"name":       func(a, b dto.NamedRecordResponse) int { return compareFolded(a.Name, b.Name) },
		"created_at": func(a, b dto.NamedRecordResponse) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
}

// Create godoc
// @Summary      Crear registro de catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NamedRecordRequest  true  "Nombre y descripción"
// @Success      201   {object}  dto.NamedRecordResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.NamedRecordRequest
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
// @Summary      Obtener registro por ID
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.NamedRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar registros del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NamedRecordListResponse
// @Router       /api/brands [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c), catalogListOptions)
	return c.JSON(dto.NamedRecordListResponse{Items: page, Meta: meta})
}

// Export godoc
// @Summary      Exportar catálogo (csv, xlsx, pdf, html)
// @Tags         catalog
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Router       /api/brands/export [get]
func (h *CatalogHandler) Export(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c), catalogListOptions)
	doc := report.Document{Title: h.title, Columns: []report.Column{
		{Key: "name", Label: "Name"},
		{Key: "description", Label: "Description"},
		{Key: "created_at", Label: "Created"},
	}}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"name":        r.Name,
			"description": r.Description,
			"created_at":  r.CreatedAt,
		})
	}
	return respondReport(c, doc)
}

// Update godoc
// @Summary      Actualizar registro
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.NamedRecordRequest  true  "Registro completo"
// @Success      200   {object}  dto.NamedRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.NamedRecordRequest
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
// @Summary      Eliminar registro
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204  "Sin contenido"
// @Router       /api/brands/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
