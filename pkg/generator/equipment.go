package generator

import (
	"fmt"

	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func init() {
	_ = Register(intent.TypeEquipmentTracking, func() Generator { return &EquipmentGenerator{} })
}

var equipmentColumns = []string{
	"platform_id", "item_id", "item_name", "item_type", "completion_percentage",
	"due_date", "assigned_team", "priority", "estimated_hours", "actual_hours", "status",
}

var (
	itemTypes = []string{"Hardware", "Software", "Testing", "Integration", "Documentation"}
	teamNames = []string{"Alpha", "Beta", "Gamma", "Delta", "Echo"}

	priorityWeights = []synth.Weighted[string]{
		{Value: "High", Weight: 0.2},
		{Value: "Medium", Weight: 0.6},
		{Value: "Low", Weight: 0.2},
	}

	// Real projects cluster around milestone percentages, with more items in
	// the middle stages than at either end.
	completionClusters = []synth.Weighted[float64]{
		{Value: 0, Weight: 0.15},
		{Value: 25, Weight: 0.2},
		{Value: 50, Weight: 0.3},
		{Value: 75, Weight: 0.25},
		{Value: 100, Weight: 0.1},
	}
)

// EquipmentGenerator produces platform/item completion tracking rows.
// Rows are grouped into synthetic platforms of 30-80 items each.
type EquipmentGenerator struct{}

// Generate produces count equipment rows.
func (g *EquipmentGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(equipmentColumns)

	numPlatforms := count / 50
	if numPlatforms < 1 {
		numPlatforms = 1
	}

	for platformID := 1; table.NumRows() < count; platformID++ {
		numItems := ctx.IntBetween(30, 80)

		for itemID := 1; itemID <= numItems && table.NumRows() < count; itemID++ {
			completion := g.sampleCompletion(ctx)

			actualHours := 0
			if completion > 0 {
				actualHours = ctx.IntBetween(5, 150)
			}

			table.AppendRow(sample.Row{
				"platform_id":           fmt.Sprintf("PLAT-%03d", platformID),
				"item_id":               fmt.Sprintf("ITEM-%03d-%03d", platformID, itemID),
				"item_name":             ctx.CatchPhrase(),
				"item_type":             synth.Choice(ctx, itemTypes),
				"completion_percentage": completion,
				"due_date":              ctx.DateBetween(synth.DaysAgo(30), synth.DaysAhead(90)),
				"assigned_team":         synth.Choice(ctx, teamNames),
				"priority":              synth.WeightedChoice(ctx, priorityWeights),
				"estimated_hours":       ctx.IntBetween(8, 120),
				"actual_hours":          actualHours,
				"status":                StatusFromCompletion(completion),
			})
		}

		if platformID >= numPlatforms && table.NumRows() >= count {
			break
		}
	}

	return table, nil
}

// sampleCompletion draws a completion percentage from the clustered
// distribution with uniform noise in [-10, 10], clamped to [0, 100] and
// rounded to one decimal place.
func (g *EquipmentGenerator) sampleCompletion(ctx *synth.Context) float64 {
	base := synth.WeightedChoice(ctx, completionClusters)
	completion := base + ctx.UniformFloat(-10, 10)
	if completion < 0 {
		completion = 0
	}
	if completion > 100 {
		completion = 100
	}
	// One decimal place, matching how completion is reported upstream.
	return float64(int(completion*10+0.5)) / 10
}

// StatusFromCompletion maps a completion percentage to its lifecycle status.
// The mapping is a deterministic step function.
func StatusFromCompletion(completion float64) string {
	switch {
	case completion == 0:
		return "Not Started"
	case completion < 25:
		return "Planning"
	case completion < 75:
		return "In Progress"
	case completion < 100:
		return "Almost Done"
	default:
		return "Completed"
	}
}
