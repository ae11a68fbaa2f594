package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

func cityAgeSample() *sample.Table {
	table := sample.New([]string{"city", "age"})
	table.AppendRow(sample.Row{"city": "NY", "age": int64(30)})
	table.AppendRow(sample.Row{"city": "LA", "age": int64(45)})
	table.AppendRow(sample.Row{"city": "NY", "age": int64(22)})
	return table
}

func TestBuild(t *testing.T) {
	p, err := Build(cityAgeSample())
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "age"}, p.Columns)
	assert.Equal(t, 3, p.RowCount)
	assert.Len(t, p.SampleRows, 3)

	city := p.ColumnProfiles["city"]
	require.Equal(t, KindCategorical, city.Kind)
	assert.Equal(t, []interface{}{"NY", "LA"}, city.DistinctValues)

	age := p.ColumnProfiles["age"]
	require.Equal(t, KindNumeric, age.Kind)
	require.NotNil(t, age.Numeric)
	assert.Equal(t, 22.0, age.Numeric.Min)
	assert.Equal(t, 45.0, age.Numeric.Max)
	assert.InDelta(t, 32.33, age.Numeric.Mean, 0.01)
}

func TestBuildEmptySample(t *testing.T) {
	tests := []struct {
		name  string
		table *sample.Table
	}{
		{"nil table", nil},
		{"zero columns", sample.New(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.table)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeEmptySample))
		})
	}
}

func TestBuildZeroRows(t *testing.T) {
	// Columns with no data are legal and profile as unknown.
	p, err := Build(sample.New([]string{"a", "b"}))
	require.NoError(t, err)

	assert.Equal(t, 0, p.RowCount)
	assert.Equal(t, KindUnknown, p.ColumnProfiles["a"].Kind)
	assert.Equal(t, KindUnknown, p.ColumnProfiles["b"].Kind)
}

func TestBuildSampleRowsCapped(t *testing.T) {
	table := sample.New([]string{"n"})
	for i := 0; i < 10; i++ {
		table.AppendRow(sample.Row{"n": i})
	}

	p, err := Build(table)
	require.NoError(t, err)
	assert.Len(t, p.SampleRows, 3, "at most 3 diagnostic rows are kept")
	assert.Equal(t, 10, p.RowCount)
}
