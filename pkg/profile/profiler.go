package profile

import (
	"time"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

// maxDistinctValues caps how many distinct values a categorical profile keeps.
const maxDistinctValues = 10

// topFrequencyRank caps how many (value, count) pairs a profile keeps.
const topFrequencyRank = 3

// Profiler classifies a single column and summarizes its distribution.
// The zero value is the default, lenient profiler: columns that are neither
// numeric nor representable as text degrade to KindUnknown. With Strict set,
// such columns produce an unsupported_column_type error instead.
type Profiler struct {
	Strict bool
}

// Profile inspects one column's values and produces its ColumnProfile.
// Nulls are dropped before analysis; an all-null column has KindUnknown.
// The function is pure: same input, same profile, no side effects.
func (p Profiler) Profile(values []interface{}) (ColumnProfile, error) {
	nonNull := make([]interface{}, 0, len(values))
	for _, v := range values {
		if v != nil {
			nonNull = append(nonNull, v)
		}
	}

	if len(nonNull) == 0 {
		return ColumnProfile{Kind: KindUnknown}, nil
	}

	allNumeric := true
	for _, v := range nonNull {
		if !sample.IsNumeric(v) {
			allNumeric = false
			break
		}
	}

	if allNumeric {
		return ColumnProfile{
			Kind:    KindNumeric,
			Numeric: numericStats(nonNull),
		}, nil
	}

	for _, v := range nonNull {
		if !representable(v) {
			if p.Strict {
				return ColumnProfile{}, errors.Newf(errors.ErrorTypeUnsupportedColumn,
					"column value of type %T is neither numeric nor representable as text", v)
			}
			return ColumnProfile{Kind: KindUnknown}, nil
		}
	}

	distinct, rank := categoricalStats(nonNull)
	return ColumnProfile{
		Kind:           KindCategorical,
		DistinctValues: distinct,
		FrequencyRank:  rank,
	}, nil
}

// Profile profiles a column with the default lenient profiler.
func Profile(values []interface{}) ColumnProfile {
	cp, _ := Profiler{}.Profile(values)
	return cp
}

// representable reports whether a non-numeric value has a natural text form.
func representable(v interface{}) bool {
	switch v.(type) {
	case string, bool, time.Time:
		return true
	default:
		return sample.IsNumeric(v)
	}
}

// numericStats computes min/max/mean over the non-null values.
// Overflow does not raise; results saturate at the closest representable value.
func numericStats(values []interface{}) *NumericStats {
	stats := &NumericStats{}
	sum := 0.0
	first := true

	for _, v := range values {
		n, ok := sample.AsFloat(v)
		if !ok {
			continue
		}
		if first {
			stats.Min = n
			stats.Max = n
			first = false
		} else {
			if n < stats.Min {
				stats.Min = n
			}
			if n > stats.Max {
				stats.Max = n
			}
		}
		sum += n
	}

	stats.Mean = sum / float64(len(values))
	return stats
}

// categoricalStats collects distinct values in first-encountered order
// (truncated to maxDistinctValues) and the top values by occurrence count
// over the full column, ties broken by first-encountered order.
func categoricalStats(values []interface{}) ([]interface{}, []ValueCount) {
	counts := make(map[string]int, len(values))
	firstSeen := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	byKey := make(map[string]interface{}, len(values))

	for i, v := range values {
		key := sample.FormatValue(v)
		if _, seen := counts[key]; !seen {
			firstSeen[key] = i
			order = append(order, key)
			byKey[key] = v
		}
		counts[key]++
	}

	distinct := make([]interface{}, 0, maxDistinctValues)
	for _, key := range order {
		if len(distinct) == maxDistinctValues {
			break
		}
		distinct = append(distinct, byKey[key])
	}

	rank := make([]ValueCount, 0, topFrequencyRank)
	used := make(map[string]bool, topFrequencyRank)
	for len(rank) < topFrequencyRank && len(rank) < len(order) {
		bestKey := ""
		bestCount := -1
		for _, key := range order {
			if used[key] {
				continue
			}
			// Strictly-greater keeps the earliest-encountered key on ties.
			if counts[key] > bestCount {
				bestKey = key
				bestCount = counts[key]
			}
		}
		used[bestKey] = true
		rank = append(rank, ValueCount{Value: byKey[bestKey], Count: bestCount})
	}

	return distinct, rank
}
