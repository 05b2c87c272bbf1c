// Package report renders report datasets into PDF documents and Excel
// workbooks.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/crastudio/crastudio/domain/reporting"
)

const (
	// pdfMaxColumns caps how many leading columns a report row prints.
	pdfMaxColumns = 6
	// pdfCellWidth caps each printed cell at 25 characters.
	pdfCellWidth = 25
)

// PDF renders report tables as an A4 portrait document, one section per
// table. Rows print as a single pipe-separated line each, so every row of
// the dataset appears in the document regardless of length; fpdf breaks
// pages automatically.
type PDF struct{}

// NewPDF creates a new PDF renderer.
func NewPDF() PDF {
	return PDF{}
}

// Render writes the given tables into a single PDF document.
func (PDF) Render(tables ...reporting.Table) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	for i, table := range tables {
		if i > 0 {
			doc.Ln(6)
		}
		renderTable(doc, table)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTable(doc *fpdf.Fpdf, table reporting.Table) {
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, table.Title, "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(0, 5, rowLine(anyRow(table.Columns)), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	if table.IsEmpty() {
		doc.CellFormat(0, 5, "(no records)", "", 1, "L", false, 0, "")
		return
	}
	for _, row := range table.Rows {
		doc.CellFormat(0, 5, rowLine(row), "", 1, "L", false, 0, "")
	}
}

// rowLine joins the first pdfMaxColumns cells with " | ", truncating each
// cell to pdfCellWidth characters.
func rowLine(row []any) string {
	n := len(row)
	if n > pdfMaxColumns {
		n = pdfMaxColumns
	}
	cells := make([]string, 0, n)
	for _, v := range row[:n] {
		cells = append(cells, reporting.Truncate(reporting.CellString(v), pdfCellWidth))
	}
	return strings.Join(cells, " | ")
}

func anyRow(columns []string) []any {
	row := make([]any, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	return row
}
