package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// renderCSV escribe cabecera y filas con el codificador estándar (comillas y
// escapes según RFC 4180).
func renderCSV(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(doc.labels()); err != nil {
		return nil, fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, r := range doc.Rows {
		if err := w.Write(doc.cells(r)); err != nil {
			return nil, fmt.Errorf("csv: fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}
