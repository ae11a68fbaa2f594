package generator

import (
	"sort"
	"strings"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/sample"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

// CustomSchemaGenerator produces rows from a caller-supplied mapping of
// field name to type tag. It is constructed per request rather than
// registered, since it cannot exist without a schema.
type CustomSchemaGenerator struct {
	columns []string
	types   map[string]string
}

// NewCustomSchemaGenerator validates the schema and fixes a stable column
// order (lexicographic, since the mapping itself is unordered). An empty
// schema fails with a schema_required error.
func NewCustomSchemaGenerator(schema map[string]string) (*CustomSchemaGenerator, error) {
	if len(schema) == 0 {
		return nil, errors.New(errors.ErrorTypeSchemaRequired, "custom schema generation requires a non-empty schema")
	}

	columns := make([]string, 0, len(schema))
	types := make(map[string]string, len(schema))
	for field, tag := range schema {
		columns = append(columns, field)
		types[field] = strings.ToLower(tag)
	}
	sort.Strings(columns)

	return &CustomSchemaGenerator{columns: columns, types: types}, nil
}

// Generate produces count rows with one value per declared field.
// Unrecognized type tags fall back to a generic string token.
func (g *CustomSchemaGenerator) Generate(ctx *synth.Context, count int) (*sample.Table, error) {
	table := sample.New(g.columns)

	for i := 0; i < count; i++ {
		row := make(sample.Row, len(g.columns))
		for _, field := range g.columns {
			row[field] = fieldValue(ctx, g.types[field])
		}
		table.AppendRow(row)
	}

	return table, nil
}

// fieldValue samples one value for a declared type tag.
func fieldValue(ctx *synth.Context, tag string) interface{} {
	switch tag {
	case "string", "text", "name":
		return ctx.Word()
	case "email":
		return ctx.RandomEmail()
	case "int", "integer", "number":
		return ctx.IntBetween(1, 1000)
	case "float", "decimal":
		return synth.Round2(ctx.UniformFloat(0, 1000))
	case "date":
		return ctx.DateBetween(synth.DaysAgo(365), synth.DaysAgo(0))
	case "bool", "boolean":
		return ctx.Bool(0.5)
	default:
		return ctx.Word()
	}
}
