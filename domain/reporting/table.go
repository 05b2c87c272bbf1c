// Package reporting defines the rectangular result-set value type consumed
// by the report exporters.
package reporting

import (
	"fmt"
	"strconv"
)

// Table is an ordered rectangular result set: named columns and one row per
// record. It is the single input both exporters accept.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// ColumnCount returns the number of columns.
func (t Table) ColumnCount() int {
	return len(t.Columns)
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// CellString renders a single cell value the way the reports print it.
// Integers render without exponent notation and strings pass through
// unchanged, so round-tripped values stay byte-identical.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Truncate shortens a string to at most n bytes. Report cells are plain
// ASCII-ish identifiers and free text; byte truncation matches the original
// report output.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
