package generator

import (
	"github.com/google/uuid"

	"github.com/tabsynth/tabsynth/pkg/intent"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func init() {
	_ = Register(intent.TypeFinancialTransactions, func() Generator { return &FinancialGenerator{} })
}

var financialColumns = []string{
	"transaction_id", "account_id", "transaction_type", "amount", "currency",
	"transaction_date", "status",
}

var (
	transactionTypes = []synth.Weighted[string]{
		{Value: "payment", Weight: 0.4},
		{Value: "deposit", Weight: 0.25},
		{Value: "withdrawal", Weight: 0.25},
		{Value: "transfer", Weight: 0.1},
	}
	currencies = []string{"USD", "EUR", "GBP", "JPY", "CAD"}

	transactionStatuses = []synth.Weighted[string]{
		{Value: "completed", Weight: 0.9},
		{Value: "pending", Weight: 0.07},
		{Value: "failed", Weight: 0.03},
	}
)

// FinancialGenerator produces payment/transaction rows.
type FinancialGenerator struct{}

// Generate produces count transaction rows dated within the last year.
func (g *FinancialGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(financialColumns)

	for i := 0; i < count; i++ {
		table.AppendRow(sample.Row{
			"transaction_id":   uuid.NewString()[:12],
			"account_id":       uuid.NewString()[:8],
			"transaction_type": synth.WeightedChoice(ctx, transactionTypes),
			"amount":           synth.Round2(ctx.UniformFloat(5, 5000)),
			"currency":         synth.Choice(ctx, currencies),
			"transaction_date": ctx.DateBetween(synth.DaysAgo(365), synth.DaysAgo(0)),
			"status":           synth.WeightedChoice(ctx, transactionStatuses),
		})
	}

	return table, nil
}
