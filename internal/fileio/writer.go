package fileio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/tabsynth/tabsynth/pkg/errors"
	"github.com/tabsynth/tabsynth/pkg/sample"
)

// WriteCSV serializes a table as delimited text: a header row of column
// names, then one data row per record, heterogeneous values rendered in
// their natural text form. Quoting follows standard CSV rules.
func WriteCSV(w io.Writer, table *sample.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write CSV header")
	}

	row := make([]string, len(table.Columns))
	for _, record := range table.Rows {
		for i, col := range table.Columns {
			row[i] = sample.FormatValue(record[col])
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to write CSV row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to flush CSV output")
	}
	return nil
}

// OutputName builds a collision-safe output file name. The record count
// alone is not unique across concurrent requests, so a random token is
// always included.
func OutputName(records int, compression string) string {
	name := fmt.Sprintf("synthetic_data_%d_records_%s.csv", records, uuid.NewString()[:8])
	switch compression {
	case "gzip":
		return name + ".gz"
	case "zstd":
		return name + ".zst"
	default:
		return name
	}
}

// WriteFile writes a table into dir under a collision-safe name, optionally
// compressed (none, gzip, zstd), and returns the file's base name. The file
// is complete when the call returns; partially written files are removed on
// error.
func WriteFile(dir string, table *sample.Table, compression string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeFile, "failed to create output directory")
	}

	name := OutputName(table.NumRows(), compression)
	path := filepath.Join(dir, name)

	file, err := os.Create(path) //nolint:gosec // G304: path is derived from validated config
	if err != nil {
		return "", errors.Wrap(err, errors.ErrorTypeFile, "failed to create output file")
	}

	if err := writeCompressed(file, table, compression); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, errors.ErrorTypeFile, "failed to close output file")
	}

	return name, nil
}

func writeCompressed(w io.Writer, table *sample.Table, compression string) error {
	switch compression {
	case "", "none":
		return WriteCSV(w, table)
	case "gzip":
		gz := gzip.NewWriter(w)
		if err := WriteCSV(gz, table); err != nil {
			gz.Close()
			return err
		}
		if err := gz.Close(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to finish gzip stream")
		}
		return nil
	case "zstd":
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to create zstd writer")
		}
		if err := WriteCSV(zw, table); err != nil {
			zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "failed to finish zstd stream")
		}
		return nil
	default:
		return errors.Newf(errors.ErrorTypeConfig, "unsupported compression %q", compression)
	}
}
