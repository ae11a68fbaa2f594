package fileio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

func TestReadCSV(t *testing.T) {
	input := "name,age,score,active,joined\n" +
		"Alice,30,91.5,true,2023-06-01\n" +
		"Bob,25,,no,2023-07-15\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age", "score", "active", "joined"}, table.Columns)
	require.Equal(t, 2, table.NumRows())

	first := table.Rows[0]
	assert.Equal(t, "Alice", first["name"])
	assert.Equal(t, int64(30), first["age"])
	assert.Equal(t, 91.5, first["score"])
	assert.Equal(t, true, first["active"])
	joined, ok := first["joined"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, "2023-06-01", joined.Format("2006-01-02"))

	second := table.Rows[1]
	assert.Nil(t, second["score"], "empty cells become explicit nulls")
	assert.Equal(t, false, second["active"])
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEmptySample))
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("a,b,c\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.NumRows())
	assert.Equal(t, 3, table.NumColumns())
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\n1,2,3,4\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())

	short := table.Rows[0]
	assert.Equal(t, int64(1), short["a"])
	assert.Nil(t, short["c"], "short rows are padded with nulls")

	long := table.Rows[1]
	assert.Len(t, long, 3, "long rows are truncated to the declared columns")
}

func TestInferCell(t *testing.T) {
	tests := []struct {
		name string
		text string
		want interface{}
	}{
		{"empty", "", nil},
		{"integer", "42", int64(42)},
		{"negative integer", "-7", int64(-7)},
		{"float", "3.14", 3.14},
		{"bool yes", "yes", true},
		{"bool false", "FALSE", false},
		{"plain text", "hello", "hello"},
		{"whitespace trimmed", "  55 ", int64(55)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCell(tt.text))
		})
	}

	t.Run("date", func(t *testing.T) {
		got, ok := inferCell("2024-01-31").(time.Time)
		require.True(t, ok)
		assert.Equal(t, "2024-01-31", got.Format("2006-01-02"))
	})

	t.Run("timestamp", func(t *testing.T) {
		got, ok := inferCell("2024-01-31 08:30:00").(time.Time)
		require.True(t, ok)
		assert.Equal(t, 8, got.Hour())
	})
}

func TestWriteCSVRoundTrip(t *testing.T) {
	table := sample.New([]string{"name", "age", "score", "active"})
	table.AppendRow(sample.Row{"name": "Alice", "age": 30, "score": 91.5, "active": true})
	table.AppendRow(sample.Row{"name": "Bob", "age": 25, "score": nil, "active": false})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	decoded, err := ReadCSV(&buf)
	require.NoError(t, err)

	assert.Equal(t, table.Columns, decoded.Columns)
	require.Equal(t, 2, decoded.NumRows())
	assert.Equal(t, "Alice", decoded.Rows[0]["name"])
	assert.Equal(t, int64(30), decoded.Rows[0]["age"])
	assert.Equal(t, 91.5, decoded.Rows[0]["score"])
	assert.Equal(t, true, decoded.Rows[0]["active"])
	assert.Nil(t, decoded.Rows[1]["score"])
}

func TestOutputName(t *testing.T) {
	t.Run("embeds record count", func(t *testing.T) {
		name := OutputName(250, "none")
		assert.True(t, strings.HasPrefix(name, "synthetic_data_250_records_"))
		assert.True(t, strings.HasSuffix(name, ".csv"))
	})

	t.Run("collision safe", func(t *testing.T) {
		assert.NotEqual(t, OutputName(100, "none"), OutputName(100, "none"),
			"same record count must still produce distinct names")
	})

	t.Run("compression suffixes", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(OutputName(10, "gzip"), ".csv.gz"))
		assert.True(t, strings.HasSuffix(OutputName(10, "zstd"), ".csv.zst"))
	})
}

func TestWriteFile(t *testing.T) {
	table := sample.New([]string{"n"})
	table.AppendRow(sample.Row{"n": 1})
	table.AppendRow(sample.Row{"n": 2})

	for _, compression := range []string{"none", "gzip", "zstd"} {
		t.Run(compression, func(t *testing.T) {
			dir := t.TempDir()

			name, err := WriteFile(dir, table, compression)
			require.NoError(t, err)

			info, err := os.Stat(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}
}

func TestWriteFileBadCompression(t *testing.T) {
	table := sample.New([]string{"n"})
	table.AppendRow(sample.Row{"n": 1})

	dir := t.TempDir()
	_, err := WriteFile(dir, table, "lz4")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "partial files are removed on error")
}
