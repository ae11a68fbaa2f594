package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/profile"
)

func testProfile() *profile.PatternProfile {
	return &profile.PatternProfile{
		Columns: []string{"city", "age"},
		ColumnProfiles: map[string]profile.ColumnProfile{
			"city": {
				Kind:           profile.KindCategorical,
				DistinctValues: []interface{}{"NY", "LA", "SF"},
			},
			"age": {
				Kind:    profile.KindNumeric,
				Numeric: &profile.NumericStats{Min: 22, Max: 45, Mean: 32.3},
			},
		},
		RowCount: 3,
	}
}

func TestSynthesize(t *testing.T) {
	s := NewSynthesizer(NewSeededContext(7), nil)

	table, err := s.Synthesize(testProfile(), 50)
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "age"}, table.Columns)
	require.Equal(t, 50, table.NumRows())

	for _, row := range table.Rows {
		city, ok := row["city"].(string)
		require.True(t, ok)
		assert.Contains(t, []string{"NY", "LA", "SF"}, city,
			"categorical cells come only from observed distinct values")

		age, ok := row["age"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, age, 22.0)
		assert.LessOrEqual(t, age, 45.0)
	}
}

func TestSynthesizeZeroCount(t *testing.T) {
	s := NewSynthesizer(NewSeededContext(7), nil)

	table, err := s.Synthesize(testProfile(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, table.NumRows())
	assert.Equal(t, []string{"city", "age"}, table.Columns,
		"empty output still carries the profile's columns")
}

func TestSynthesizeBadProfile(t *testing.T) {
	s := NewSynthesizer(NewSeededContext(7), nil)

	tests := []struct {
		name string
		p    *profile.PatternProfile
	}{
		{"nil profile", nil},
		{"zero columns", &profile.PatternProfile{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Synthesize(tt.p, 10)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeProfile))
		})
	}
}

func TestSynthesizeFallbackHeuristics(t *testing.T) {
	p := &profile.PatternProfile{
		Columns: []string{"user_id", "full_name", "contact_email", "birth_date", "misc"},
		ColumnProfiles: map[string]profile.ColumnProfile{
			"user_id":       {Kind: profile.KindUnknown},
			"full_name":     {Kind: profile.KindUnknown},
			"contact_email": {Kind: profile.KindUnknown},
			"birth_date":    {Kind: profile.KindUnknown},
			"misc":          {Kind: profile.KindUnknown},
		},
	}

	s := NewSynthesizer(NewSeededContext(7), nil)
	table, err := s.Synthesize(p, 20)
	require.NoError(t, err)

	for _, row := range table.Rows {
		id, ok := row["user_id"].(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, id, 1000)
		assert.LessOrEqual(t, id, 9999)

		name, ok := row["full_name"].(string)
		require.True(t, ok)
		assert.Contains(t, name, " ")

		email, ok := row["contact_email"].(string)
		require.True(t, ok)
		assert.True(t, strings.Contains(email, "@"))

		_, ok = row["birth_date"].(time.Time)
		assert.True(t, ok)

		word, ok := row["misc"].(string)
		require.True(t, ok)
		assert.NotEmpty(t, word)
	}
}

func TestSynthesizeDeterministicWithSeed(t *testing.T) {
	p := testProfile()

	a, err := NewSynthesizer(NewSeededContext(99), nil).Synthesize(p, 25)
	require.NoError(t, err)
	b, err := NewSynthesizer(NewSeededContext(99), nil).Synthesize(p, 25)
	require.NoError(t, err)

	assert.Equal(t, a.Rows, b.Rows)
}
