package generator

import (
	"github.com/google/uuid"

	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func init() {
	_ = Register(intent.TypeCustomer, func() Generator { return &CustomerGenerator{} })
}

var customerColumns = []string{
	"customer_id", "first_name", "last_name", "email", "phone", "address",
	"signup_date", "age", "annual_income", "customer_segment", "is_active",
}

var segmentWeights = []synth.Weighted[string]{
	{Value: "Premium", Weight: 0.2},
	{Value: "Standard", Weight: 0.5},
	{Value: "Basic", Weight: 0.3},
}

// CustomerGenerator produces CRM-shaped customer records.
type CustomerGenerator struct{}

// Generate produces count customer rows. Signup dates fall within the last
// two years; the active flag is true for roughly 80% of rows.
func (g *CustomerGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(customerColumns)

	for i := 0; i < count; i++ {
		first := ctx.FirstName()
		last := ctx.LastName()

		table.AppendRow(sample.Row{
			"customer_id":      uuid.NewString()[:8],
			"first_name":       first,
			"last_name":        last,
			"email":            ctx.Email(first, last),
			"phone":            ctx.Phone(),
			"address":          ctx.Address(),
			"signup_date":      ctx.DateBetween(synth.DaysAgo(730), synth.DaysAgo(0)),
			"age":              ctx.IntBetween(18, 80),
			"annual_income":    ctx.IntBetween(30000, 150000),
			"customer_segment": synth.WeightedChoice(ctx, segmentWeights),
			"is_active":        ctx.Bool(0.8),
		})
	}

	return table, nil
}
