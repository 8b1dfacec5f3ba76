package converter

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/filefmt/internal/config"
	"github.com/mcncl/filefmt/internal/dialect"
	"github.com/mcncl/filefmt/internal/errors"
	"github.com/mcncl/filefmt/internal/models"
)

// JSONToCsv reads a JSON document holding a single object or an array of
// objects and writes delimited text to csvPath. The header is the union
// of all field names in first-seen order; records missing a field emit an
// empty cell. Compound values are serialized as embedded JSON text with
// their key order preserved. An empty top-level array commits a
// completely empty file with no header line, while a file holding no
// JSON document at all is a decode error. A nil cfg uses the defaults.
func JSONToCsv(jsonPath, csvPath string, d dialect.Dialect, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	raw, err := readInput(jsonPath)
	if err != nil {
		return err
	}

	records, err := decodeDocument(raw)
	if err != nil {
		return err
	}

	doc := models.NewDocument()
	for _, rec := range records {
		doc.Append(rec)
	}

	if doc.Len() == 0 {
		return writeFileAtomic(csvPath, nil, cfg)
	}

	lines := make([]string, 0, doc.Len()+1)
	lines = append(lines, d.JoinRow(doc.Header))

	for _, rec := range doc.Records {
		cells := make([]string, len(doc.Header))
		for i, name := range doc.Header {
			v, found := rec.Get(name)
			if !found {
				continue
			}
			cell, cerr := renderCell(v)
			if cerr != nil {
				return cerr
			}
			cells[i] = cell
		}
		lines = append(lines, d.JoinRow(cells))
	}

	content := strings.Join(lines, "\n") + "\n"
	return writeFileAtomic(csvPath, []byte(content), cfg)
}

// decodeDocument turns the raw JSON bytes into records. A top-level
// object becomes a one-record document; a top-level array must contain
// only objects. Any other well-formed top-level value is a schema error,
// while malformed or absent text is a decode error. Records are decoded
// by models.DecodeRecord so field values carry json.Number and nested
// key order, not the float64 a plain unmarshal would produce.
func decodeDocument(raw []byte) ([]models.Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.NewJSONDecodeError(
			"input file contains no JSON document", errors.ErrEmptyInput)
	}

	switch trimmed[0] {
	case '{':
		rec, err := models.DecodeRecord(trimmed)
		if err != nil {
			return nil, decodeError(err)
		}
		return []models.Record{rec}, nil

	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, decodeError(err)
		}
		records := make([]models.Record, 0, len(elems))
		for i, el := range elems {
			el = bytes.TrimSpace(el)
			if len(el) == 0 || el[0] != '{' {
				return nil, errors.NewSchemaError(
					fmt.Sprintf("array element %d is not an object", i+1), nil)
			}
			rec, err := models.DecodeRecord(el)
			if err != nil {
				return nil, decodeError(err)
			}
			records = append(records, rec)
		}
		return records, nil

	default:
		var v interface{}
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, decodeError(err)
		}
		return nil, errors.NewSchemaError(
			"top-level JSON value must be an object or an array of objects", nil)
	}
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewJSONDecodeError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxErr.Offset), errors.ErrInvalidJSON)
	}
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return errors.NewJSONDecodeError(
			fmt.Sprintf("JSON type error at offset %d for type %s", typeErr.Offset, typeErr.Type), errors.ErrInvalidJSON)
	}
	return errors.NewJSONDecodeError("failed to decode JSON", err)
}

// renderCell gives the canonical text form of a value before escaping.
// Null renders as an empty cell; compound values render as compact JSON
// with object key order preserved by the ordered record type.
func renderCell(v models.JSONValue) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(val), nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", errors.NewOutputError("failed to serialize compound value", err)
		}
		return string(b), nil
	}
}
