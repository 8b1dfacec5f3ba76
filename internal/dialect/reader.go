package dialect

import (
	"bufio"
	"io"
	"strings"
)

// RowReader splits an input stream into records according to a Dialect.
// Fields are returned fully un-escaped. Quoted fields may span line
// breaks; escape sequences are decoded inline. The reader keeps a 1-based
// count of the records it has produced so malformed rows can be reported
// by their physical position.
type RowReader struct {
	r      *bufio.Reader
	d      Dialect
	rowNum int
	done   bool
}

// NewRowReader creates a RowReader over r using dialect d.
func NewRowReader(r io.Reader, d Dialect) *RowReader {
	return &RowReader{r: bufio.NewReader(r), d: d}
}

// RowNumber returns the 1-based number of the most recently read record.
func (rr *RowReader) RowNumber() int {
	return rr.rowNum
}

// Read returns the next record, or io.EOF after the last one. A record
// ends at an unquoted line break; \r\n and \n are both accepted. The
// final record does not require a trailing line break.
func (rr *RowReader) Read() ([]string, error) {
	if rr.done {
		return nil, io.EOF
	}

	var fields []string
	var field strings.Builder
	inQuotes := false
	sawAny := false

	for {
		r, _, err := rr.r.ReadRune()
		if err == io.EOF {
			rr.done = true
			if !sawAny {
				return nil, io.EOF
			}
			fields = append(fields, field.String())
			rr.rowNum++
			return fields, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case rr.d.EscapeChar != 0 && r == rr.d.EscapeChar:
			sawAny = true
			next, _, nerr := rr.r.ReadRune()
			if nerr == io.EOF {
				// Trailing lone escape character is kept literally.
				field.WriteRune(r)
				continue
			}
			if nerr != nil {
				return nil, nerr
			}
			switch next {
			case 'n':
				field.WriteRune('\n')
			case 't':
				field.WriteRune('\t')
			case 'r':
				field.WriteRune('\r')
			default:
				field.WriteRune(next)
			}

		case r == Quote:
			sawAny = true
			if inQuotes {
				next, _, nerr := rr.r.ReadRune()
				if nerr == nil && next == Quote {
					// Doubled quote inside a quoted field is a literal quote.
					field.WriteRune(Quote)
					continue
				}
				if nerr == nil {
					_ = rr.r.UnreadRune()
				}
				inQuotes = false
			} else if field.Len() == 0 {
				// Opening quote only counts at the start of a field.
				inQuotes = true
			} else {
				field.WriteRune(Quote)
			}

		case r == rr.d.Delimiter && !inQuotes:
			sawAny = true
			fields = append(fields, field.String())
			field.Reset()

		case r == '\n' && !inQuotes:
			fields = append(fields, field.String())
			rr.rowNum++
			return fields, nil

		case r == '\r' && !inQuotes:
			// Dropped; the record ends at the following \n.

		default:
			sawAny = true
			field.WriteRune(r)
		}
	}
}

// IsBlank reports whether a record came from a blank line: a single empty
// field. Such records are skipped between data rows.
func IsBlank(record []string) bool {
	return len(record) == 1 && record[0] == ""
}
