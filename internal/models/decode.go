package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeRecord parses one JSON object into a Record. Decoding is done
// token by token so that key order is preserved at every nesting level
// and numbers keep their source text as json.Number; a plain
// json.Unmarshal would collapse 75000.50 to a float64 and lose the
// trailing zero. Trailing data after the object is an error.
func DecodeRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	rec, ok := v.(Record)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", valueName(v))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return rec, nil
}

// decodeValue reads one complete JSON value from dec. Scalars arrive from
// the tokenizer already typed as string, bool, json.Number or nil.
func decodeValue(dec *json.Decoder) (JSONValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		rec := NewRecord()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string")
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			rec.Set(key, val)
		}
		// Closing '}'.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return rec, nil

	case '[':
		arr := make(JSONArray, 0)
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		// Closing ']'.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
}

func valueName(v JSONValue) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	case string:
		return "a string"
	case JSONArray:
		return "an array"
	default:
		return "a value"
	}
}
