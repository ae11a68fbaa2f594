package synth

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/profile"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

// Synthesizer generates rows whose per-column statistics approximate a
// learned PatternProfile. Each cell is sampled independently, conditioned
// only on its own column's profile; cross-column correlation is not modeled.
type Synthesizer struct {
	ctx    *Context
	logger *zap.Logger
}

// NewSynthesizer creates a synthesizer drawing from the given context.
func NewSynthesizer(ctx *Context, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{ctx: ctx, logger: logger}
}

// Synthesize produces exactly count rows, each carrying every profiled
// column in profile order. A zero-column profile fails with a profile error;
// count <= 0 yields an empty table with the profile's columns.
func (s *Synthesizer) Synthesize(p *profile.PatternProfile, count int) (*sample.Table, error) {
	if p == nil || p.NumColumns() == 0 {
		return nil, errors.New(errors.ErrorTypeProfile, "profile has no columns to synthesize from")
	}

	table := sample.New(p.Columns)
	for i := 0; i < count; i++ {
		row := make(sample.Row, len(p.Columns))
		for _, col := range p.Columns {
			row[col] = s.sampleCell(col, p.ColumnProfiles[col])
		}
		table.AppendRow(row)
	}

	if s.logger != nil {
		s.logger.Debug("profile-conditioned synthesis complete",
			zap.Int("rows", count),
			zap.Int("columns", len(p.Columns)))
	}

	return table, nil
}

// sampleCell draws one value for a column conditioned on its profile.
func (s *Synthesizer) sampleCell(column string, cp profile.ColumnProfile) interface{} {
	switch cp.Kind {
	case profile.KindCategorical:
		// Uniform over the observed distinct values. Frequency counts are
		// recorded in the profile but deliberately not used as weights; the
		// uniform behavior is kept for compatibility with existing datasets.
		if len(cp.DistinctValues) > 0 {
			return Choice(s.ctx, cp.DistinctValues)
		}
		return s.fallbackValue(column)
	case profile.KindNumeric:
		if cp.Numeric != nil {
			return round2(s.ctx.UniformFloat(cp.Numeric.Min, cp.Numeric.Max))
		}
		return s.fallbackValue(column)
	default:
		return s.fallbackValue(column)
	}
}

// fallbackValue fills a cell for columns the profiler could not learn,
// keyed by heuristics on the column name.
func (s *Synthesizer) fallbackValue(column string) interface{} {
	lower := strings.ToLower(column)
	switch {
	case strings.Contains(lower, "id"):
		return s.ctx.IntBetween(1000, 9999)
	case strings.Contains(lower, "name"):
		return s.ctx.FullName()
	case strings.Contains(lower, "email"):
		return s.ctx.RandomEmail()
	case strings.Contains(lower, "date"):
		return s.ctx.DateBetween(DaysAgo(365), DaysAgo(0))
	default:
		return s.ctx.Word()
	}
}

// round2 rounds to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Round2 rounds a float to 2 decimal places. Generators use it to keep
// derived monetary fields exact.
func Round2(f float64) float64 {
	return round2(f)
}
