package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/domain/reporting"
)

// maxSheetName is the sheet-name length limit imposed by the xlsx format.
const maxSheetName = 31

// Excel renders report tables as an xlsx workbook, one sheet per table.
type Excel struct{}

// NewExcel creates a new Excel renderer.
func NewExcel() Excel {
	return Excel{}
}

// Workbook writes the given tables into a single workbook. Sheet names come
// from the table titles, truncated to the xlsx 31-character limit; two
// tables whose titles collide after truncation are a conflict.
func (Excel) Workbook(tables ...reporting.Table) ([]byte, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: workbook needs at least one sheet", compliance.ErrValidation)
	}

	wb := excelize.NewFile()
	defer wb.Close()

	seen := make(map[string]bool, len(tables))
	for i, table := range tables {
		name := reporting.Truncate(table.Title, maxSheetName)
		if seen[name] {
			return nil, fmt.Errorf("duplicate sheet name %q: %w", name, compliance.ErrConflict)
		}
		seen[name] = true

		if i == 0 {
			// excelize starts every workbook with a default sheet.
			if err := wb.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := wb.NewSheet(name); err != nil {
				return nil, fmt.Errorf("add sheet %q: %w", name, err)
			}
		}

		if err := writeSheet(wb, name, table); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(wb *excelize.File, sheet string, table reporting.Table) error {
	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header for %q: %w", sheet, err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name for %q row %d: %w", sheet, i, err)
		}
		values := make([]any, len(row))
		copy(values, row)
		if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d for %q: %w", i, sheet, err)
		}
	}
	return nil
}
