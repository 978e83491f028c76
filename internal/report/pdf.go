package report

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfColorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// renderPDF arma el reporte tabular en A4: título, cabecera de columnas y una
// fila por registro. Maroto reparte 12 columnas de grilla entre las columnas
// del reporte.
func renderPDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(
		col.New(12).Add(text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: pdfColorPrimary, Top: 2,
		})),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.5}))

	widths := gridWidths(len(doc.Columns))
	m.AddRows(pdfHeaderRow(doc.labels(), widths))
	for _, r := range doc.Rows {
		m.AddRows(pdfDataRow(doc.cells(r), widths))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func pdfHeaderRow(labels []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(widths[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: pdfColorPrimary, Top: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func pdfDataRow(cells []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, value := range cells {
		cols = append(cols, col.New(widths[i]).Add(text.New(value, props.Text{
			Size: 8, Align: align.Left, Top: 1, Color: pdfColorGray,
		})))
	}
	return row.New(6).Add(cols...)
}

// gridWidths reparte las 12 columnas de la grilla de maroto; el sobrante se
// acumula en la última columna.
func gridWidths(n int) []int {
	if n == 0 {
		return nil
	}
	if n > 12 {
		n = 12
	}
	base := 12 / n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	widths[n-1] += 12 - base*n
	return widths
}
