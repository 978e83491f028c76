// Package listview implementa el estado derivado de las pantallas de listado:
// búsqueda, filtros, orden estable, paginación con clamp y el ciclo de vida
// de la vista (cargando, lista, vacía) sobre una suscripción en vivo.
//
// El orden del pipeline es fijo: búsqueda → filtros → orden → clamp de
// página → recorte. Cambiar cualquier entrada recalcula todo desde la última
// emisión cruda; nada se muta incrementalmente.
package listview

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Direcciones de orden.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPageSize tamaño de página cuando el parámetro llega en cero.
const DefaultPageSize = 10

// Params son las entradas del pipeline que controla el usuario.
type Params struct {
	Search   string
	Filters  map[string]string // clave de filtro -> valor; vacío = inactivo
	SortKey  string
	SortDir  string // SortAsc | SortDesc; vacío = SortAsc
	Page     int    // 1-based
	PageSize int
}

// Options describe cómo se busca, filtra y ordena una entidad concreta.
type Options[T any] struct {
	// ID identifica la fila (marcas de borrado en curso).
	ID func(T) string
	// Searchable devuelve los campos sobre los que aplica la búsqueda.
	Searchable []func(T) string
	// Filters predicados por clave; reciben la entidad y el valor del filtro.
	Filters map[string]func(T, string) bool
	// Sorters comparadores por columna: negativo si a < b.
	Sorters map[string]func(a, b T) int
}

// Result es la página derivada lista para renderizar.
type Result[T any] struct {
	Items      []T
	Total      int // filas tras búsqueda y filtros, antes del recorte
	Page       int // 0 solo cuando Total == 0
	PageSize   int
	TotalPages int
}

var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza para búsqueda: minúsculas y sin diacríticos, de modo que
// "ÁRBOL" y "arbol" se encuentren mutuamente.
func Fold(s string) string {
	out, _, err := transform.String(foldTransform, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Apply ejecuta el pipeline completo sobre la última emisión cruda.
func Apply[T any](items []T, params Params, opts Options[T]) Result[T] {
	rows := applySearch(items, params.Search, opts.Searchable)
	rows = applyFilters(rows, params.Filters, opts.Filters)
	applySort(rows, params.SortKey, params.SortDir, opts.Sorters)
	return paginate(rows, params.Page, params.PageSize)
}

func applySearch[T any](items []T, search string, fields []func(T) string) []T {
	needle := Fold(strings.TrimSpace(search))
	if needle == "" || len(fields) == 0 {
		// Copia: el orden de emisión es el desempate del sort estable y no
		// debe perturbarse el slice del llamador.
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range fields {
			if strings.Contains(Fold(field(it)), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

func applyFilters[T any](items []T, values map[string]string, preds map[string]func(T, string) bool) []T {
	if len(values) == 0 || len(preds) == 0 {
		return items
	}
	out := items[:0]
	for _, it := range items {
		keep := true
		for key, val := range values {
			if val == "" {
				continue
			}
			pred, ok := preds[key]
			if !ok {
				continue
			}
			if !pred(it, val) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}

func applySort[T any](items []T, key, dir string, sorters map[string]func(a, b T) int) {
	cmp, ok := sorters[key]
	if !ok {
		return
	}
	desc := dir == SortDesc
	// Estable: los empates conservan el orden de emisión del almacén.
	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func paginate[T any](items []T, page, pageSize int) Result[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	if total == 0 {
		return Result[T]{Items: []T{}, Total: 0, Page: 0, PageSize: pageSize, TotalPages: 0}
	}
	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return Result[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
