package generator

import (
	"github.com/google/uuid"

	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func init() {
	_ = Register(intent.TypeSales, func() Generator { return &SalesGenerator{} })
}

var salesColumns = []string{
	"transaction_id", "customer_id", "product_name", "category", "quantity",
	"unit_price", "total_amount", "transaction_date", "payment_method",
	"sales_rep", "region",
}

var (
	salesCategories = []string{"Electronics", "Clothing", "Home", "Sports", "Books"}
	paymentMethods  = []string{"Credit Card", "Debit Card", "PayPal", "Cash"}
	salesRegions    = []string{"North", "South", "East", "West", "Central"}
)

// SalesGenerator produces sales transaction rows. total_amount is always
// derived as round(quantity * unit_price, 2), never sampled independently.
type SalesGenerator struct{}

// Generate produces count sales rows.
func (g *SalesGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(salesColumns)

	for i := 0; i < count; i++ {
		quantity := ctx.IntBetween(1, 10)
		unitPrice := synth.Round2(ctx.UniformFloat(10, 500))

		table.AppendRow(sample.Row{
			"transaction_id":   uuid.NewString()[:12],
			"customer_id":      uuid.NewString()[:8],
			"product_name":     ctx.CatchPhrase(),
			"category":         synth.Choice(ctx, salesCategories),
			"quantity":         quantity,
			"unit_price":       unitPrice,
			"total_amount":     synth.Round2(float64(quantity) * unitPrice),
			"transaction_date": ctx.DateBetween(synth.DaysAgo(365), synth.DaysAgo(0)),
			"payment_method":   synth.Choice(ctx, paymentMethods),
			"sales_rep":        ctx.FullName(),
			"region":           synth.Choice(ctx, salesRegions),
		})
	}

	return table, nil
}
