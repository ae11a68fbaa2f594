// Package profile learns per-column statistical profiles from tabular
// samples. A ColumnProfile summarizes one column (type classification plus
// distribution facts); a PatternProfile aggregates the column profiles of a
// whole sample and conditions downstream synthesis.
//
// Profiles are built once per request, consumed once, and discarded. They
// are never persisted and never cached across requests.
package profile

import (
	"github.com/tabsynth/tabsynth/pkg/sample"
)

// ColumnKind classifies a column's values.
type ColumnKind string

const (
	// KindCategorical marks columns holding discrete, non-numeric values.
	KindCategorical ColumnKind = "categorical"
	// KindNumeric marks columns whose every non-null value is numeric.
	KindNumeric ColumnKind = "numeric"
	// KindUnknown marks all-null or unsupported columns.
	KindUnknown ColumnKind = "unknown"
)

// ValueCount pairs an observed value with its occurrence count.
type ValueCount struct {
	Value interface{} `json:"value"`
	Count int         `json:"count"`
}

// NumericStats holds the distribution summary of a numeric column.
// Statistics cover non-null values only.
type NumericStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// ColumnProfile is the learned statistical summary of one column.
type ColumnProfile struct {
	// Kind is the type classification of the column.
	Kind ColumnKind `json:"kind"`

	// DistinctValues holds up to 10 observed distinct values in stable
	// first-encountered order. Categorical columns only.
	DistinctValues []interface{} `json:"distinct_values,omitempty"`

	// FrequencyRank holds the top 3 values by occurrence count, ties broken
	// by first-encountered order. Categorical columns only.
	FrequencyRank []ValueCount `json:"frequency_rank,omitempty"`

	// Numeric holds min/max/mean for numeric columns.
	Numeric *NumericStats `json:"numeric,omitempty"`
}

// PatternProfile is the complete per-column learned model for a dataset.
// Column order matches the source sample and is preserved by synthesis.
type PatternProfile struct {
	// Columns holds the column names in source order.
	Columns []string `json:"columns"`

	// ColumnProfiles maps each column name to its learned profile.
	ColumnProfiles map[string]ColumnProfile `json:"column_profiles"`

	// RowCount is the number of rows in the source sample.
	RowCount int `json:"row_count"`

	// SampleRows holds up to 3 original rows verbatim. Diagnostic only;
	// the synthesizer never reads them.
	SampleRows []sample.Row `json:"sample_rows,omitempty"`
}

// NumColumns returns the number of profiled columns.
func (p *PatternProfile) NumColumns() int {
	return len(p.Columns)
}
