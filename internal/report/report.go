// Package report genera los reportes tabulares de las pantallas de listado:
// CSV, XLSX, PDF y la vista de impresión HTML. Los cuatro formatos comparten
// el mismo formateo de valores, de modo que lo exportado coincide carácter a
// carácter con lo mostrado en pantalla.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos-api/internal/domain"
)

// Format es el formato de salida del reporte.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "xlsx"
	FormatPDF   Format = "pdf"
	FormatHTML  Format = "html"
)

// Content types por formato.
const (
	contentTypeCSV   = "text/csv; charset=utf-8"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF   = "application/pdf"
	contentTypeHTML  = "text/html; charset=utf-8"
)

// Formato de fecha de los reportes (el mismo de las pantallas).
const dateLayout = "02 Jan 2006"

// Column describe una columna del reporte; el orden del slice es el orden de
// salida en todos los formatos.
type Column struct {
	Key   string
	Label string
}

// Row es una fila del reporte, indexada por Column.Key.
type Row map[string]any

// Document es un reporte listo para renderizar.
type Document struct {
	Title   string
	Columns []Column
	Rows    []Row
}

// Render produce el reporte en el formato pedido y devuelve los bytes junto
// con el content type. Formato desconocido -> domain.ErrUnsupported.
func Render(format Format, doc Document) ([]byte, string, error) {
	switch format {
	case FormatCSV:
		b, err := renderCSV(doc)
		return b, contentTypeCSV, err
	case FormatExcel:
		b, err := renderExcel(doc)
		return b, contentTypeExcel, err
	case FormatPDF:
		b, err := renderPDF(doc)
		return b, contentTypePDF, err
	case FormatHTML:
		b, err := renderHTML(doc)
		return b, contentTypeHTML, err
	default:
		return nil, "", fmt.Errorf("formato %q: %w", format, domain.ErrUnsupported)
	}
}

// Filename arma el nombre de descarga: título + extensión del formato.
func Filename(title string, format Format) string {
	return fmt.Sprintf("%s.%s", title, format)
}

// FormatValue aplica el formateo compartido: fechas "02 Jan 2006", montos con
// dos decimales, booleanos Yes/No. Es el único punto donde un valor se
// convierte en texto de reporte.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case decimal.Decimal:
		return t.StringFixed(2)
	case *decimal.Decimal:
		if t == nil {
			return ""
		}
		return t.StringFixed(2)
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(dateLayout)
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case int:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// cells devuelve la fila ya formateada en el orden de las columnas.
func (d Document) cells(r Row) []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = FormatValue(r[c.Key])
	}
	return out
}

// labels devuelve las etiquetas de columna en orden.
func (d Document) labels() []string {
	out := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		out[i] = c.Label
	}
	return out
}
