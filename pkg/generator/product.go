package generator

import (
	"fmt"

	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func init() {
	_ = Register(intent.TypeProductCatalog, func() Generator { return &ProductGenerator{} })
}

var productColumns = []string{
	"product_id", "sku", "product_name", "category", "price",
	"stock_quantity", "is_discontinued", "added_date",
}

var productCategories = []string{"Electronics", "Clothing", "Home", "Sports", "Books", "Toys"}

// ProductGenerator produces product catalog inventory rows.
type ProductGenerator struct{}

// Generate produces count product rows.
func (g *ProductGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(productColumns)

	for i := 0; i < count; i++ {
		table.AppendRow(sample.Row{
			"product_id":      fmt.Sprintf("PROD-%05d", i+1),
			"sku":             fmt.Sprintf("SKU-%04d-%04d", ctx.IntBetween(1000, 9999), ctx.IntBetween(1000, 9999)),
			"product_name":    ctx.CatchPhrase(),
			"category":        synth.Choice(ctx, productCategories),
			"price":           synth.Round2(ctx.UniformFloat(5, 2000)),
			"stock_quantity":  ctx.IntBetween(0, 500),
			"is_discontinued": ctx.Bool(0.1),
			"added_date":      ctx.DateBetween(synth.DaysAgo(1095), synth.DaysAgo(0)),
		})
	}

	return table, nil
}
