// Package dialect implements the delimiter and escaping policy shared by
// both conversion directions.
//
// A Dialect carries one configurable delimiter and an optional escape
// character. With an escape character set, literal delimiters, quotes and
// the escape character itself are escaped by prefixing, and control
// characters are letter-encoded (newline as <esc>n, tab as <esc>t). With
// no escape character, fields containing the delimiter, a quote or a
// newline are wrapped in quotes and embedded quotes are doubled, which is
// the standard CSV fallback.
package dialect

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mcncl/filefmt/internal/errors"
)

// Quote is the fixed quote character used for the quoting fallback.
const Quote = '"'

// Dialect is the per-conversion delimiter/escape configuration. It is
// constructed once per invocation and read-only afterwards.
type Dialect struct {
	Delimiter  rune
	EscapeChar rune // zero when no escape character is configured
}

// Default returns the comma dialect with no escape character.
func Default() Dialect {
	return Dialect{Delimiter: ','}
}

// New builds a Dialect from the single-character flag values. An empty
// delimiter falls back to a comma; an empty escape string leaves the
// quoting fallback in effect.
func New(delimiter, escape string) (Dialect, error) {
	d := Default()

	if delimiter != "" {
		runes := []rune(delimiter)
		if len(runes) != 1 {
			return Dialect{}, errors.NewInputError(
				fmt.Sprintf("delimiter must be a single character, got %q", delimiter), nil)
		}
		d.Delimiter = runes[0]
	}
	if err := validateChar(d.Delimiter, "delimiter"); err != nil {
		return Dialect{}, err
	}

	if escape != "" {
		runes := []rune(escape)
		if len(runes) != 1 {
			return Dialect{}, errors.NewInputError(
				fmt.Sprintf("escape character must be a single character, got %q", escape), nil)
		}
		d.EscapeChar = runes[0]
		if err := validateChar(d.EscapeChar, "escape character"); err != nil {
			return Dialect{}, err
		}
		if d.EscapeChar == d.Delimiter {
			return Dialect{}, errors.NewInputError(
				"escape character must differ from the delimiter", nil)
		}
	}

	return d, nil
}

// validateChar rejects characters that would make the dialect ambiguous:
// the quote character, line breaks, and letters/digits (letters would
// collide with the <esc>n / <esc>t control encodings).
func validateChar(r rune, role string) error {
	switch {
	case r == Quote:
		return errors.NewInputError(fmt.Sprintf("%s must not be the quote character", role), nil)
	case r == '\n' || r == '\r':
		return errors.NewInputError(fmt.Sprintf("%s must not be a line break", role), nil)
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return errors.NewInputError(fmt.Sprintf("%s must not be a letter or digit, got %q", role, r), nil)
	}
	return nil
}

// Escape converts a raw field value into its cell text form. Escape and
// Unescape are exact inverses for any raw value, including values mixing
// the delimiter, quotes, the escape character and newlines.
func (d Dialect) Escape(raw string) string {
	if d.EscapeChar != 0 {
		var b strings.Builder
		for _, r := range raw {
			switch r {
			case d.EscapeChar:
				b.WriteRune(d.EscapeChar)
				b.WriteRune(d.EscapeChar)
			case d.Delimiter:
				b.WriteRune(d.EscapeChar)
				b.WriteRune(d.Delimiter)
			case Quote:
				b.WriteRune(d.EscapeChar)
				b.WriteRune(Quote)
			case '\n':
				b.WriteRune(d.EscapeChar)
				b.WriteRune('n')
			case '\t':
				b.WriteRune(d.EscapeChar)
				b.WriteRune('t')
			case '\r':
				b.WriteRune(d.EscapeChar)
				b.WriteRune('r')
			default:
				b.WriteRune(r)
			}
		}
		return b.String()
	}

	// Quoting fallback.
	if !strings.ContainsAny(raw, string([]rune{d.Delimiter, Quote, '\n', '\r'})) {
		return raw
	}
	var b strings.Builder
	b.WriteRune(Quote)
	for _, r := range raw {
		if r == Quote {
			b.WriteRune(Quote)
		}
		b.WriteRune(r)
	}
	b.WriteRune(Quote)
	return b.String()
}

// Unescape converts cell text back into the raw field value. Unknown
// escape sequences keep the escaped character literally, so the function
// is total over arbitrary cell text.
func (d Dialect) Unescape(cell string) string {
	runes := []rune(cell)

	if d.EscapeChar != 0 {
		var b strings.Builder
		for i := 0; i < len(runes); i++ {
			r := runes[i]
			if r == d.EscapeChar && i+1 < len(runes) {
				i++
				switch runes[i] {
				case 'n':
					b.WriteRune('\n')
				case 't':
					b.WriteRune('\t')
				case 'r':
					b.WriteRune('\r')
				default:
					b.WriteRune(runes[i])
				}
				continue
			}
			b.WriteRune(r)
		}
		return b.String()
	}

	// Quoting fallback: strip the wrapping quotes and collapse doubled
	// quotes. Unwrapped cells pass through unchanged.
	if len(runes) >= 2 && runes[0] == Quote && runes[len(runes)-1] == Quote {
		inner := runes[1 : len(runes)-1]
		var b strings.Builder
		for i := 0; i < len(inner); i++ {
			if inner[i] == Quote && i+1 < len(inner) && inner[i+1] == Quote {
				i++
			}
			b.WriteRune(inner[i])
		}
		return b.String()
	}
	return cell
}

// JoinRow escapes each field and joins them with the delimiter, producing
// one output record without a trailing line break.
func (d Dialect) JoinRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = d.Escape(f)
	}
	return strings.Join(escaped, string(d.Delimiter))
}
