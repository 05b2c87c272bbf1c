package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/domain/reporting"
)

func TestExcel_WorkbookRoundTrip(t *testing.T) {
	tables := []reporting.Table{
		{
			Title:   "Inventory",
			Columns: []string{"id", "name", "market"},
			Rows: [][]any{
				{int64(1), "Gateway ECU", "EU"},
				{int64(2), "Telematics Backend", "EU,US"},
			},
		},
		{
			Title:   "Gaps",
			Columns: []string{"id", "risk_score"},
			Rows: [][]any{
				{int64(1), 9},
			},
		},
	}

	data, err := NewExcel().Workbook(tables...)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Inventory", "Gaps"}, wb.GetSheetList())

	rows, err := wb.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "market"}, rows[0])
	assert.Equal(t, []string{"1", "Gateway ECU", "EU"}, rows[1])
	assert.Equal(t, []string{"2", "Telematics Backend", "EU,US"}, rows[2])
}

func TestExcel_WorkbookEmptySheet(t *testing.T) {
	data, err := NewExcel().Workbook(reporting.Table{
		Title:   "Evidence",
		Columns: []string{"id", "artifact_name"},
	})
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Evidence")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"id", "artifact_name"}, rows[0])
}

func TestExcel_SheetNameTruncation(t *testing.T) {
	long := "A Very Long Sheet Title That Exceeds The Limit"
	data, err := NewExcel().Workbook(reporting.Table{
		Title:   long,
		Columns: []string{"id"},
	})
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	names := wb.GetSheetList()
	require.Len(t, names, 1)
	assert.Equal(t, long[:31], names[0])
}

func TestExcel_SheetNameCollision(t *testing.T) {
	// Two titles identical within the first 31 characters collide after
	// truncation.
	first := reporting.Table{Title: "Quarterly Compliance Posture Overview Q1", Columns: []string{"id"}}
	second := reporting.Table{Title: "Quarterly Compliance Posture Overview Q2", Columns: []string{"id"}}

	_, err := NewExcel().Workbook(first, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, compliance.ErrConflict)
}

func TestExcel_WorkbookRequiresSheets(t *testing.T) {
	_, err := NewExcel().Workbook()
	require.Error(t, err)
	assert.ErrorIs(t, err, compliance.ErrValidation)
}
