package generator

import (
	"math"

	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func init() {
	_ = Register(intent.TypeTimeSeries, func() Generator { return &TimeSeriesGenerator{} })
}

var timeSeriesColumns = []string{"date", "value", "category"}

var timeSeriesCategories = []string{"A", "B", "C"}

const (
	timeSeriesBase   = 100.0
	timeSeriesTrend  = 0.1
	noiseStdDev      = 10.0
	seasonalAmpl     = 20.0
	seasonalPeriodDy = 30.0
)

// TimeSeriesGenerator produces one row per day covering the count days
// before today. Values follow a linear trend with gaussian noise and a
// 30-day sinusoidal seasonal component, floored at zero.
type TimeSeriesGenerator struct{}

// Generate produces count daily rows.
func (g *TimeSeriesGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(timeSeriesColumns)
	start := synth.DaysAgo(count)

	for i := 0; i < count; i++ {
		trend := timeSeriesBase + timeSeriesTrend*float64(i)
		noise := ctx.Gauss(0, noiseStdDev)
		seasonal := seasonalAmpl * math.Sin(2*math.Pi*float64(i)/seasonalPeriodDy)

		value := trend + noise + seasonal
		if value < 0 {
			value = 0
		}

		table.AppendRow(sample.Row{
			"date":     start.AddDate(0, 0, i),
			"value":    synth.Round2(value),
			"category": synth.Choice(ctx, timeSeriesCategories),
		})
	}

	return table, nil
}
