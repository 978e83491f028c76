package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/domain"
)

func sampleDocument() Document {
	return Document{
		Title: "Ventas",
		Columns: []Column{
			{Key: "date", Label: "Fecha"},
			{Key: "customer", Label: "Cliente"},
			{Key: "total", Label: "Total"},
			{Key: "paid", Label: "Pagada"},
		},
		Rows: []Row{
			{
				"date":     time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
				"customer": "ACME, S.A.",
				"total":    decimal.RequireFromString("114.5"),
				"paid":     true,
			},
			{
				"date":     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
				"customer": "Beta",
				"total":    decimal.NewFromInt(80),
				"paid":     false,
			},
		},
	}
}

// ── Formateo compartido ──────────────────────────────────────────────────────

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"fecha", time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC), "14 Mar 2025"},
		{"fecha cero", time.Time{}, ""},
		{"monto dos decimales", decimal.RequireFromString("114.5"), "114.50"},
		{"monto entero", decimal.NewFromInt(80), "80.00"},
		{"bool verdadero", true, "Yes"},
		{"bool falso", false, "No"},
		{"string", "ACME", "ACME"},
		{"nil", nil, ""},
		{"entero", 42, "42"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatValue(tc.in))
		})
	}
}

// ── CSV ──────────────────────────────────────────────────────────────────────

func TestRender_CSV(t *testing.T) {
	b, ct, err := Render(FormatCSV, sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", ct)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Fecha,Cliente,Total,Pagada", lines[0])
	// La coma del nombre obliga comillas RFC 4180.
	assert.Equal(t, `14 Mar 2025,"ACME, S.A.",114.50,Yes`, lines[1])
	assert.Equal(t, "15 Mar 2025,Beta,80.00,No", lines[2])
}

// ── XLSX / PDF (smoke: bytes válidos del formato) ────────────────────────────

func TestRender_Excel(t *testing.T) {
	b, ct, err := Render(FormatExcel, sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, contentTypeExcel, ct)
	require.NotEmpty(t, b)
	// Un xlsx es un zip: firma PK.
	assert.Equal(t, byte('P'), b[0])
	assert.Equal(t, byte('K'), b[1])
}

func TestRender_PDF(t *testing.T) {
	b, ct, err := Render(FormatPDF, sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, contentTypePDF, ct)
	require.NotEmpty(t, b)
	assert.True(t, strings.HasPrefix(string(b[:5]), "%PDF-"))
}

// ── HTML de impresión ────────────────────────────────────────────────────────

func TestRender_HTML(t *testing.T) {
	b, ct, err := Render(FormatHTML, sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, contentTypeHTML, ct)

	html := string(b)
	assert.Contains(t, html, "<title>Ventas</title>")
	assert.Contains(t, html, "<th>Cliente</th>")
	assert.Contains(t, html, "<td>114.50</td>")
	// El escape de la plantilla protege el contenido.
	assert.NotContains(t, html, "<script>")
}

func TestRender_HTMLEscapaContenido(t *testing.T) {
	doc := Document{
		Title:   "Listado",
		Columns: []Column{{Key: "name", Label: "Nombre"}},
		Rows:    []Row{{"name": "<script>alert(1)</script>"}},
	}
	b, _, err := Render(FormatHTML, doc)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "<script>alert")
	assert.Contains(t, string(b), "&lt;script&gt;")
}

// ── Formato desconocido ──────────────────────────────────────────────────────

func TestRender_FormatoDesconocido(t *testing.T) {
	_, _, err := Render(Format("docx"), sampleDocument())
	require.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Ventas.xlsx", Filename("Ventas", FormatExcel))
}
