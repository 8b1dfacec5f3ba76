package models

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, null, object, or array.
type JSONValue = interface{}

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray = []interface{}

// Record is one row of tabular data: an insertion-ordered mapping from
// field name to value. Ordering matters in both directions: CSV columns
// follow the header, and JSON object keys must keep the order they were
// written in when a compound value is serialized into a cell.
type Record = *orderedmap.OrderedMap

// NewRecord creates an empty Record.
func NewRecord() Record {
	return orderedmap.New()
}

// Document is the full ordered collection of Records for one conversion,
// together with the unioned field-name list that becomes the CSV header.
type Document struct {
	// Header lists every field name seen across all records, ordered by
	// first appearance in document order.
	Header []string

	// Records holds one entry per input row or JSON array element.
	Records []Record

	seen map[string]struct{}
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{seen: make(map[string]struct{})}
}

// Append adds a record to the document and extends the header with any
// field names not seen before, preserving first-seen order.
func (d *Document) Append(r Record) {
	for _, key := range r.Keys() {
		if _, ok := d.seen[key]; !ok {
			d.seen[key] = struct{}{}
			d.Header = append(d.Header, key)
		}
	}
	d.Records = append(d.Records, r)
}

// Len returns the number of records in the document.
func (d *Document) Len() int {
	return len(d.Records)
}
