// Package fileio implements the file boundary around the core pipeline:
// decoding uploaded CSV files into tabular samples and serializing generated
// tables back to delimited text, optionally compressed.
package fileio

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

var dateLayouts = []string{
	"2006-01-02", // YYYY-MM-DD
	"01/02/2006", // MM/DD/YYYY
	"2006/01/02", // YYYY/MM/DD
}

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}`)

// ReadCSV decodes delimited text into a tabular sample. The first row is the
// header; cell text is inferred into typed values (integer, float, boolean,
// date, string) and empty cells become explicit nulls. Short rows are padded
// with nulls and long rows truncated, so the result is always rectangular.
func ReadCSV(r io.Reader) (*sample.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged input, normalize below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrorTypeEmptySample, "uploaded file has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read CSV header")
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	table := sample.New(columns)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read CSV row")
		}

		row := make(sample.Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = inferCell(record[i])
			}
		}
		table.AppendRow(row)
	}

	return table, nil
}

// inferCell converts one CSV cell into its typed value. Empty text is null.
func inferCell(text string) interface{} {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	if b, ok := parseBool(text); ok {
		return b
	}
	if t, ok := parseDate(text); ok {
		return t
	}
	return text
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes":
		return true, true
	case "false", "no":
		return false, true
	default:
		return false, false
	}
}

func parseDate(s string) (time.Time, bool) {
	if timestampPattern.MatchString(s) {
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
