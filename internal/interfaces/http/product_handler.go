package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// productListOptions define búsqueda, filtros y orden de la pantalla de
// productos. La búsqueda ignora mayúsculas y diacríticos.
var productListOptions = listview.Options[dto.ProductResponse]{
	ID: func(p dto.ProductResponse) string { return p.ID },
	Searchable: []func(dto.ProductResponse) string{
		func(p dto.ProductResponse) string { return p.Name },
		func(p dto.ProductResponse) string { return p.SKU },
	},
	Filters: map[string]func(dto.ProductResponse, string) bool{
		"brand":    func(p dto.ProductResponse, v string) bool { return p.Brand == v },
		"category": func(p dto.ProductResponse, v string) bool { return p.Category == v },
		"unit":     func(p dto.ProductResponse, v string) bool { return p.Unit == v },
	},
	Sorters: map[string]func(a, b dto.ProductResponse) int{
		"name": func(a, b dto.ProductResponse) int { return compareFolded(a.Name, b.Name) },
		"sku":  func(a, b dto.ProductResponse) int { return compareFolded(a.SKU, b.SKU) },
		"selling_price": func(a, b dto.ProductResponse) int {
			return a.SellingPriceExcTax.Cmp(b.SellingPriceExcTax)
		},
		"created_at": func(a, b dto.ProductResponse) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
}

var productReportColumns = []report.Column{
	{Key: "name", Label: "Product"},
	{Key: "sku", Label: "SKU"},
	{Key: "brand", Label: "Brand"},
	{Key: "category", Label: "Category"},
	{Key: "unit", Label: "Unit"},
	{Key: "purchase_price", Label: "Purchase Price"},
	{Key: "selling_price", Label: "Selling Price"},
	{Key: "manage_stock", Label: "Manage Stock"},
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Búsqueda por nombre o SKU"
// @Param        brand      query  string  false  "Filtro por marca"
// @Param        category   query  string  false  "Filtro por categoría"
// @Param        unit       query  string  false  "Filtro por unidad"
// @Param        sort_key   query  string  false  "Columna de orden"
// @Param        sort_dir   query  string  false  "asc | desc"
// @Param        page       query  int     false  "Página (1-based)"
// @Param        page_size  query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, "brand", "category", "unit"), productListOptions)
	return c.JSON(dto.ProductListResponse{Items: page, Meta: meta})
}

// Export godoc
// @Summary      Exportar productos (csv, xlsx, pdf, html)
// @Tags         products
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | xlsx | pdf | html"  default(csv)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/export [get]
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	rows := exportRows(items, listParams(c, "brand", "category", "unit"), productListOptions)
	doc := report.Document{Title: "Products", Columns: productReportColumns}
	for _, p := range rows {
		doc.Rows = append(doc.Rows, report.Row{
			"name":           p.Name,
			"sku":            p.SKU,
			"brand":          p.Brand,
			"category":       p.Category,
			"unit":           p.Unit,
			"purchase_price": p.PurchasePriceExcTax,
			"selling_price":  p.SellingPriceExcTax,
			"manage_stock":   p.ManageStock,
		})
	}
	return respondReport(c, doc)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.ProductRequest
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
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
