// Package converter implements the two whole-file transforms between CSV
// and JSON. Both directions share the dialect policy and commit their
// output atomically: the destination file only appears once the full
// transform has succeeded.
package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/filefmt/internal/config"
	"github.com/mcncl/filefmt/internal/dialect"
	"github.com/mcncl/filefmt/internal/errors"
	"github.com/mcncl/filefmt/internal/inference"
	"github.com/mcncl/filefmt/internal/models"
)

// CsvToJSON reads a delimited text file, infers per-cell types and writes
// a JSON array of objects to jsonPath. Field order follows the header. A
// header-only file produces an empty array. A nil cfg uses the defaults.
func CsvToJSON(csvPath, jsonPath string, d dialect.Dialect, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	raw, err := readInput(csvPath)
	if err != nil {
		return err
	}

	rr := dialect.NewRowReader(bytes.NewReader(raw), d)

	header, err := readHeader(rr, cfg)
	if err != nil {
		return err
	}

	out := make([]models.Record, 0)
	for {
		row, rerr := rr.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return errors.NewInputError("failed to read CSV row", rerr)
		}
		if dialect.IsBlank(row) {
			continue
		}
		if len(row) != len(header) {
			return errors.NewMalformedRowError(rr.RowNumber(),
				fmt.Sprintf("row %d has %d cells, expected %d", rr.RowNumber(), len(row), len(header)), nil)
		}

		rec := models.NewRecord()
		for i, name := range header {
			rec.Set(name, inference.Infer(row[i]))
		}
		out = append(out, rec)
	}

	data, err := json.MarshalIndent(out, "", strings.Repeat(" ", cfg.Output.Indent))
	if err != nil {
		return errors.NewOutputError("failed to encode JSON output", err)
	}
	data = append(data, '\n')

	return writeFileAtomic(jsonPath, data, cfg)
}

// readHeader returns the header names from the first non-blank record,
// trimmed and re-cased per the configuration. Duplicate names fail the
// conversion.
func readHeader(rr *dialect.RowReader, cfg *config.Config) ([]string, error) {
	for {
		row, err := rr.Read()
		if err == io.EOF {
			return nil, errors.NewSchemaError("CSV file has no header row", errors.ErrNoHeader)
		}
		if err != nil {
			return nil, errors.NewInputError("failed to read CSV header", err)
		}
		if dialect.IsBlank(row) {
			continue
		}

		header := make([]string, len(row))
		seen := make(map[string]int, len(row))
		for i, cell := range row {
			name := cfg.FieldName(strings.TrimSpace(cell))
			if prev, dup := seen[name]; dup {
				return nil, errors.NewSchemaError(
					fmt.Sprintf("duplicate header column %q (positions %d and %d)", name, prev+1, i+1), nil)
			}
			seen[name] = i
			header[i] = name
		}
		return header, nil
	}
}

// readInput loads an input file, mapping a missing file and undecodable
// bytes to their error kinds before any parsing starts.
func readInput(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFoundError(
				fmt.Sprintf("input file '%s' not found", path), errors.ErrFileNotFound)
		}
		return nil, errors.NewInputError(fmt.Sprintf("failed to read input file '%s'", path), err)
	}
	if !utf8.Valid(raw) {
		return nil, errors.NewEncodingError(fmt.Sprintf("input file '%s' is not valid UTF-8", path), nil)
	}
	return raw, nil
}
