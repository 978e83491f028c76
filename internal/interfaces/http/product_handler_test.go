package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	apphttp "github.com/jhoicas/retail-pos-api/internal/interfaces/http"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// newProductApp monta el handler de productos sin middleware de auth: aquí se
// prueba el pipeline de listado y el export, no el token.
func newProductApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.New()
	t.Cleanup(store.Close)

	h := apphttp.NewProductHandler(usecase.NewProductUseCase(service.NewProducts(store)))
	app := fiber.New()
	g := app.Group("/api/products")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/export", h.Export)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	return app
}

func createProduct(t *testing.T, app *fiber.App, name, sku string) dto.ProductResponse {
	t.Helper()
	body, _ := json.Marshal(dto.ProductRequest{Name: name, SKU: sku})
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func listProducts(t *testing.T, app *fiber.App, query string) dto.ProductListResponse {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products?"+query, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestProductHandler_BusquedaSinDiacriticos(t *testing.T) {
	app := newProductApp(t)
	createProduct(t, app, "Árbol de navidad", "ARB-001")
	createProduct(t, app, "Martillo", "MART-001")

	out := listProducts(t, app, "search=arbol")
	require.Len(t, out.Items, 1)
	assert.Equal(t, "ARB-001", out.Items[0].SKU)
	assert.Equal(t, 1, out.Meta.Total)
}

func TestProductHandler_OrdenYPaginacion(t *testing.T) {
	app := newProductApp(t)
	for _, name := range []string{"Zapato", "Abrigo", "Martillo"} {
		createProduct(t, app, name, "SKU-"+name)
	}

	out := listProducts(t, app, "sort_key=name&sort_dir=asc&page=1&page_size=2")
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Abrigo", out.Items[0].Name)
	assert.Equal(t, "Martillo", out.Items[1].Name)
	assert.Equal(t, 3, out.Meta.Total)
	assert.Equal(t, 2, out.Meta.TotalPages)

	// Página fuera de rango se ajusta a la última.
	out = listProducts(t, app, "sort_key=name&page=99&page_size=2")
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Zapato", out.Items[0].Name)
	assert.Equal(t, 2, out.Meta.Page)
}

func TestProductHandler_ListaVacia(t *testing.T) {
	app := newProductApp(t)
	out := listProducts(t, app, "")
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Meta.Total)
	assert.Equal(t, 0, out.Meta.Page)
	assert.Equal(t, 0, out.Meta.TotalPages)
}

func TestProductHandler_ExportCSVRespetaFiltros(t *testing.T) {
	app := newProductApp(t)
	createProduct(t, app, "Martillo", "MART-001")
	createProduct(t, app, "Taladro", "TAL-001")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/export?format=csv&search=taladro", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Products.csv")

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "cabecera + una fila filtrada")
	assert.Contains(t, lines[1], "Taladro")
	assert.NotContains(t, buf.String(), "Martillo")
}

func TestProductHandler_FormatoDesconocidoFalla(t *testing.T) {
	app := newProductApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/export?format=docx", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductHandler_GetInexistenteRetorna404(t *testing.T) {
	app := newProductApp(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/no-existe", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_SKUDuplicadoRetorna409(t *testing.T) {
	app := newProductApp(t)
	createProduct(t, app, "Martillo", "MART-001")

	body, _ := json.Marshal(dto.ProductRequest{Name: "Otro", SKU: "MART-001"})
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProductHandler_DeleteRetorna204(t *testing.T) {
	app := newProductApp(t)
	created := createProduct(t, app, "Martillo", "MART-001")

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/products/"+created.ID, nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	out := listProducts(t, app, "")
	assert.Empty(t, out.Items)
}
