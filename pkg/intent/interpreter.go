package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tabsynth/tabsynth/pkg/config"
)

// rule binds a keyword set to the intent it selects.
type rule struct {
	keywords []string
	intent   Type
}

// rules is evaluated top to bottom; the first matching rule wins.
var rules = []rule{
	{[]string{"customer", "client", "user"}, TypeCustomer},
	{[]string{"equipment", "platform", "item", "completion"}, TypeEquipmentTracking},
	{[]string{"sales", "revenue", "purchase"}, TypeSales},
	{[]string{"employee", "staff", "hr"}, TypeEmployeeRecords},
	{[]string{"transaction", "payment", "financial"}, TypeFinancialTransactions},
	{[]string{"product", "inventory", "catalog"}, TypeProductCatalog},
	{[]string{"time series", "timeseries", "over time"}, TypeTimeSeries},
}

var integerPattern = regexp.MustCompile(`\d+`)

// Interpreter resolves free-text requests into generation intents.
type Interpreter struct {
	bounds config.GenerationConfig
}

// NewInterpreter creates an interpreter with the given record-count policy.
func NewInterpreter(bounds config.GenerationConfig) *Interpreter {
	return &Interpreter{bounds: bounds}
}

// Interpret classifies the request text. A supplied profile always forces
// profile-conditioned synthesis regardless of text content. Without a
// profile, the ordered keyword rules decide; when none match, the intent is
// custom_schema if a schema was separately supplied and customer otherwise.
//
// The record count is the first integer literal in the text, defaulting to
// the configured default, and is clamped to the configured inclusive range.
// Pure function; no I/O.
func (i *Interpreter) Interpret(text string, hasProfile, hasSchema bool) Intent {
	count := i.bounds.Clamp(i.extractCount(text))

	if hasProfile {
		return Intent{Type: TypeProfileConditioned, Count: count}
	}

	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return Intent{Type: r.intent, Count: count}
			}
		}
	}

	if hasSchema {
		return Intent{Type: TypeCustomSchema, Count: count}
	}
	return Intent{Type: TypeCustomer, Count: count}
}

// extractCount returns the first integer literal in the text, or the
// configured default when the text names none.
func (i *Interpreter) extractCount(text string) int {
	match := integerPattern.FindString(text)
	if match == "" {
		return i.bounds.DefaultRecords
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		// Literals longer than an int (e.g. 40 digits) fall back to the
		// upper bound rather than failing the request.
		return i.bounds.MaxRecords
	}
	return n
}
