package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/synth"
)

func TestNewCustomSchemaGeneratorRequiresSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema map[string]string
	}{
		{"nil schema", nil},
		{"empty schema", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomSchemaGenerator(tt.schema)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeSchemaRequired))
		})
	}
}

func TestCustomSchemaGenerator(t *testing.T) {
	gen, err := NewCustomSchemaGenerator(map[string]string{
		"zip":     "string",
		"amount":  "Float",
		"count":   "integer",
		"contact": "email",
		"when":    "date",
		"active":  "bool",
		"other":   "mystery",
	})
	require.NoError(t, err)

	table, err := gen.Generate(synth.NewSeededContext(13), 40)
	require.NoError(t, err)

	// Column order is fixed lexicographically regardless of map iteration.
	assert.Equal(t, []string{"active", "amount", "contact", "count", "other", "when", "zip"}, table.Columns)
	require.Equal(t, 40, table.NumRows())

	for _, row := range table.Rows {
		_, ok := row["active"].(bool)
		assert.True(t, ok)

		amount, ok := row["amount"].(float64)
		require.True(t, ok, "type tags are case-insensitive")
		assert.GreaterOrEqual(t, amount, 0.0)
		assert.LessOrEqual(t, amount, 1000.0)

		contact, ok := row["contact"].(string)
		require.True(t, ok)
		assert.Contains(t, contact, "@")

		count, ok := row["count"].(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, count, 1)
		assert.LessOrEqual(t, count, 1000)

		_, ok = row["other"].(string)
		assert.True(t, ok, "unrecognized tags fall back to a string token")

		_, ok = row["when"].(time.Time)
		assert.True(t, ok)

		_, ok = row["zip"].(string)
		assert.True(t, ok)
	}
}
