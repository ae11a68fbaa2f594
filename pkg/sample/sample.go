// Package sample provides the in-memory tabular data model used on both
// sides of the synthesis pipeline: uploaded files are decoded into a Table,
// and generators produce a Table that the CSV writer serializes.
//
// A Table is rectangular by construction: every row carries exactly the
// declared columns, with missing cells stored as explicit nils rather than
// omitted keys. Column order is significant and preserved end to end.
package sample

import (
	"time"

	"github.com/tabsynth/tabsynth/pkg/errors"
)

// Row maps a column name to a scalar cell value. Supported cell kinds are
// string, int, int64, float64, bool, time.Time and nil (absent).
type Row map[string]interface{}

// Table is an ordered rectangular collection of rows.
type Table struct {
	// Columns holds the declared column names in insertion order.
	Columns []string `json:"columns"`
	// Rows holds the data rows. Each row has exactly the declared columns.
	Rows []Row `json:"rows"`
}

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, 0),
	}
}

// AppendRow adds a row to the table, normalizing it to the declared columns.
// Cells for undeclared columns are dropped; declared columns missing from the
// row are filled with explicit nils so the table stays rectangular.
func (t *Table) AppendRow(row Row) {
	normalized := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		if v, ok := row[col]; ok {
			normalized[col] = v
		} else {
			normalized[col] = nil
		}
	}
	t.Rows = append(t.Rows, normalized)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of declared columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// Column returns the cell values of one column in row order.
// It returns an error when the column is not declared.
func (t *Table) Column(name string) ([]interface{}, error) {
	if !t.HasColumn(name) {
		return nil, errors.New(errors.ErrorTypeValidation, "column not declared: "+name)
	}
	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values, nil
}

// HasColumn reports whether the column is declared.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Head returns up to n leading rows. The returned rows are copies; mutating
// them does not affect the table.
func (t *Table) Head(n int) []Row {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	head := make([]Row, n)
	for i := 0; i < n; i++ {
		copied := make(Row, len(t.Rows[i]))
		for k, v := range t.Rows[i] {
			copied[k] = v
		}
		head[i] = copied
	}
	return head
}

// IsNumeric reports whether the value is one of the numeric cell kinds.
func IsNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// AsFloat converts a numeric cell to float64. The second return value is
// false for non-numeric cells.
func AsFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// IsTemporal reports whether the value is a date/time cell.
func IsTemporal(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}
