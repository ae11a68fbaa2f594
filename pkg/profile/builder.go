package profile

import (
	"go.uber.org/zap"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

// maxSampleRows caps how many original rows a profile keeps for diagnostics.
const maxSampleRows = 3

// Builder orchestrates the column profiler across all columns of a sample.
type Builder struct {
	profiler Profiler
	logger   *zap.Logger
}

// NewBuilder creates a profile builder using the given profiler.
func NewBuilder(profiler Profiler, logger *zap.Logger) *Builder {
	return &Builder{profiler: profiler, logger: logger}
}

// Build learns a PatternProfile from a tabular sample. Columns are profiled
// in declared order. A sample with zero columns fails with an empty_sample
// error; a sample with zero rows is legal and yields all-unknown columns.
func (b *Builder) Build(table *sample.Table) (*PatternProfile, error) {
	if table == nil || table.NumColumns() == 0 {
		return nil, errors.New(errors.ErrorTypeEmptySample, "sample has no columns to profile")
	}

	columns := append([]string(nil), table.Columns...)
	profiles := make(map[string]ColumnProfile, len(columns))

	for _, col := range columns {
		values, err := table.Column(col)
		if err != nil {
			return nil, err
		}
		cp, err := b.profiler.Profile(values)
		if err != nil {
			return nil, errors.Wrap(err, errors.TypeOf(err), "profiling column "+col)
		}
		profiles[col] = cp
	}

	p := &PatternProfile{
		Columns:        columns,
		ColumnProfiles: profiles,
		RowCount:       table.NumRows(),
		SampleRows:     table.Head(maxSampleRows),
	}

	if b.logger != nil {
		b.logger.Debug("pattern profile built",
			zap.Int("columns", len(columns)),
			zap.Int("rows", p.RowCount))
	}

	return p, nil
}

// Build learns a PatternProfile with the default lenient profiler.
func Build(table *sample.Table) (*PatternProfile, error) {
	return NewBuilder(Profiler{}, nil).Build(table)
}
