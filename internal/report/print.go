package report

import (
	"bytes"
	"fmt"
	"html/template"
)

// Plantilla de la vista de impresión: la misma tabla de la pantalla, sin
// controles, lista para window.print del lado del cliente.
var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
h1 { font-size: 18px; color: #00467f; border-bottom: 2px solid #00467f; padding-bottom: 6px; }
table { border-collapse: collapse; width: 100%; margin-top: 12px; }
th { text-align: left; background: #00467f; color: #fff; padding: 6px 8px; font-size: 12px; }
td { padding: 5px 8px; font-size: 12px; border-bottom: 1px solid #ddd; }
tr:nth-child(even) td { background: #f6f8fa; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<thead><tr>{{range .Labels}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

func renderHTML(doc Document) ([]byte, error) {
	rows := make([][]string, 0, len(doc.Rows))
	for _, r := range doc.Rows {
		rows = append(rows, doc.cells(r))
	}
	data := struct {
		Title  string
		Labels []string
		Rows   [][]string
	}{Title: doc.Title, Labels: doc.labels(), Rows: rows}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("html: renderizar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}
