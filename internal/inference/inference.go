// Package inference promotes raw CSV cell text to typed JSON values.
package inference

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Kind identifies the inferred type of a cell.
type Kind string

const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
)

// numberPattern matches JSON number literals: an optional minus, an integer
// part without leading zeros, an optional fraction and an optional exponent.
// Leading-zero strings like "007" deliberately do not match, so identifiers
// survive conversion as strings.
var numberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Infer maps one un-escaped CSV cell to its typed value. The rules are
// applied in order and every cell maps to exactly one result:
//
//  1. "true"/"false" (case-insensitive) -> bool
//  2. empty string -> nil
//  3. JSON number literal -> json.Number, preserving the source text so
//     "75000.50" serializes as 75000.50, not 75000.5
//  4. anything else -> the original string, unchanged
//
// Numeric and boolean matching ignores surrounding whitespace; cells that
// stay strings keep their whitespace as-is.
func Infer(cell string) interface{} {
	trimmed := strings.TrimSpace(cell)

	switch strings.ToLower(trimmed) {
	case "true":
		return true
	case "false":
		return false
	}

	if trimmed == "" {
		return nil
	}

	if numberPattern.MatchString(trimmed) {
		return json.Number(trimmed)
	}

	return cell
}

// KindOf reports which rule a cell resolves to. Useful for callers that
// only need the classification, and for keeping the rule table testable.
func KindOf(cell string) Kind {
	switch Infer(cell).(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case json.Number:
		return KindNumber
	default:
		return KindString
	}
}
