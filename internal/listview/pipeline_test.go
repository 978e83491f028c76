package listview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Name   string
	Status string
	Amount int
}

func rowOptions() Options[row] {
	return Options[row]{
		ID:         func(r row) string { return r.ID },
		Searchable: []func(row) string{func(r row) string { return r.Name }},
		Filters: map[string]func(row, string) bool{
			"status": func(r row, v string) bool { return r.Status == v },
		},
		Sorters: map[string]func(a, b row) int{
			"name":   func(a, b row) int { return strings.Compare(a.Name, b.Name) },
			"amount": func(a, b row) int { return a.Amount - b.Amount },
		},
	}
}

// ── Búsqueda ─────────────────────────────────────────────────────────────────

func TestApply_BusquedaIgnoraMayusculasYDiacriticos(t *testing.T) {
	items := []row{
		{ID: "1", Name: "Árbol de navidad"},
		{ID: "2", Name: "Martillo"},
		{ID: "3", Name: "arbolito"},
	}
	got := Apply(items, Params{Search: "ARBOL"}, rowOptions())
	require.Len(t, got.Items, 2)
	assert.Equal(t, "1", got.Items[0].ID)
	assert.Equal(t, "3", got.Items[1].ID)
}

func TestApply_BusquedaEsIdempotente(t *testing.T) {
	items := []row{
		{ID: "1", Name: "Café"},
		{ID: "2", Name: "Té"},
		{ID: "3", Name: "Cafetera"},
	}
	params := Params{Search: "café"}
	first := Apply(items, params, rowOptions())
	// Volver a aplicar el pipeline sobre el resultado no cambia nada.
	second := Apply(first.Items, params, rowOptions())
	assert.Equal(t, first.Items, second.Items)
	assert.Equal(t, first.Total, second.Total)
}

func TestFold_NormalizaDiacriticos(t *testing.T) {
	assert.Equal(t, "arbol", Fold("ÁRBOL"))
	assert.Equal(t, "nino", Fold("Niño"))
	assert.Equal(t, Fold("Camión"), Fold(Fold("Camión")))
}

// ── Filtros ──────────────────────────────────────────────────────────────────

func TestApply_FiltroEstructurado(t *testing.T) {
	items := []row{
		{ID: "1", Status: "Pending"},
		{ID: "2", Status: "Completed"},
		{ID: "3", Status: "Pending"},
	}
	got := Apply(items, Params{Filters: map[string]string{"status": "Pending"}}, rowOptions())
	require.Len(t, got.Items, 2)
	assert.Equal(t, "1", got.Items[0].ID)
	assert.Equal(t, "3", got.Items[1].ID)
}

func TestApply_FiltroVacioEsInactivo(t *testing.T) {
	items := []row{{ID: "1", Status: "Pending"}, {ID: "2", Status: "Completed"}}
	got := Apply(items, Params{Filters: map[string]string{"status": ""}}, rowOptions())
	assert.Len(t, got.Items, 2)
}

// ── Orden ────────────────────────────────────────────────────────────────────

func TestApply_OrdenEstableConservaEmpates(t *testing.T) {
	// Tres filas con el mismo monto: el orden de emisión decide.
	items := []row{
		{ID: "b", Amount: 10},
		{ID: "a", Amount: 5},
		{ID: "c", Amount: 10},
		{ID: "d", Amount: 10},
	}
	got := Apply(items, Params{SortKey: "amount", SortDir: SortAsc}, rowOptions())
	ids := []string{got.Items[0].ID, got.Items[1].ID, got.Items[2].ID, got.Items[3].ID}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestApply_OrdenDescendente(t *testing.T) {
	items := []row{{ID: "1", Name: "Ana"}, {ID: "2", Name: "Zoe"}}
	got := Apply(items, Params{SortKey: "name", SortDir: SortDesc}, rowOptions())
	assert.Equal(t, "Zoe", got.Items[0].Name)
}

func TestApply_OrdenNoMutaLaEmisionCruda(t *testing.T) {
	items := []row{{ID: "2", Name: "Zoe"}, {ID: "1", Name: "Ana"}}
	_ = Apply(items, Params{SortKey: "name"}, rowOptions())
	assert.Equal(t, "2", items[0].ID)
}

// ── Paginación ───────────────────────────────────────────────────────────────

func TestApply_PaginaFueraDeRangoSeAjusta(t *testing.T) {
	items := make([]row, 25)
	for i := range items {
		items[i] = row{ID: string(rune('a' + i))}
	}
	got := Apply(items, Params{Page: 99, PageSize: 10}, rowOptions())
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 3, got.TotalPages)
	assert.Len(t, got.Items, 5)
}

func TestApply_PaginaCeroONegativaVaALaPrimera(t *testing.T) {
	items := []row{{ID: "1"}, {ID: "2"}}
	got := Apply(items, Params{Page: -3, PageSize: 1}, rowOptions())
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, "1", got.Items[0].ID)
}

func TestApply_ListaVaciaEsPaginaCero(t *testing.T) {
	got := Apply(nil, Params{Page: 5, PageSize: 10}, rowOptions())
	assert.Equal(t, 0, got.Page)
	assert.Equal(t, 0, got.TotalPages)
	assert.Empty(t, got.Items)
}

func TestApply_TamanoDePaginaPorDefecto(t *testing.T) {
	items := make([]row, 15)
	got := Apply(items, Params{Page: 1}, rowOptions())
	assert.Equal(t, DefaultPageSize, got.PageSize)
	assert.Len(t, got.Items, DefaultPageSize)
	assert.Equal(t, 2, got.TotalPages)
}

// ── Orden del pipeline ───────────────────────────────────────────────────────

func TestApply_BusquedaAntesDePaginar(t *testing.T) {
	// 12 filas, 3 contienen "taladro": la búsqueda reduce a una sola página.
	items := make([]row, 0, 12)
	for i := 0; i < 9; i++ {
		items = append(items, row{ID: string(rune('a' + i)), Name: "Tornillo"})
	}
	items = append(items,
		row{ID: "x", Name: "Taladro chico"},
		row{ID: "y", Name: "Taladro mediano"},
		row{ID: "z", Name: "Taladro grande"},
	)
	got := Apply(items, Params{Search: "taladro", Page: 2, PageSize: 10}, rowOptions())
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 1, got.Page) // clamp: solo hay una página tras buscar
	assert.Len(t, got.Items, 3)
}
