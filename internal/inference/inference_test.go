package inference

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestInfer_RuleTable(t *testing.T) {
	tests := []struct {
		cell     string
		expected interface{}
	}{
		// Rule 1: booleans, case-insensitive
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"FALSE", false},

		// Rule 2: empty cell is null
		{"", nil},
		{"   ", nil},

		// Rule 3: JSON number literals keep their source text
		{"0", json.Number("0")},
		{"30", json.Number("30")},
		{"-42", json.Number("-42")},
		{"3.14", json.Number("3.14")},
		{"75000.50", json.Number("75000.50")},
		{"1e5", json.Number("1e5")},
		{"2.5E-3", json.Number("2.5E-3")},
		{" 30 ", json.Number("30")},

		// Rule 4: everything else stays a string
		{"Alice", "Alice"},
		{"007", "007"},
		{"01", "01"},
		{"+5", "+5"},
		{".5", ".5"},
		{"5.", "5."},
		{"NaN", "NaN"},
		{"Infinity", "Infinity"},
		{"12abc", "12abc"},
		{"1 2", "1 2"},
		{"truestory", "truestory"},
	}

	for _, tt := range tests {
		got := Infer(tt.cell)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Infer(%q) = %#v (%T), want %#v (%T)", tt.cell, got, got, tt.expected, tt.expected)
		}
	}
}

func TestInfer_StringsKeepWhitespace(t *testing.T) {
	got := Infer("  New York ")
	if got != "  New York " {
		t.Errorf("Infer() = %q, want the original cell unchanged", got)
	}
}

func TestKindOf_TotalAndDeterministic(t *testing.T) {
	cells := []string{"true", "FALSE", "", "  ", "0", "-1.5", "1e9", "007", "abc", "null"}

	valid := map[Kind]bool{KindNull: true, KindBoolean: true, KindNumber: true, KindString: true}
	for _, cell := range cells {
		first := KindOf(cell)
		if !valid[first] {
			t.Fatalf("KindOf(%q) = %q, not a known kind", cell, first)
		}
		// Same input always resolves to the same rule.
		if second := KindOf(cell); second != first {
			t.Errorf("KindOf(%q) not deterministic: %q then %q", cell, first, second)
		}
	}
}

func TestKindOf_NullWordIsString(t *testing.T) {
	// Only the empty cell maps to null; the word "null" is data.
	if got := KindOf("null"); got != KindString {
		t.Errorf("KindOf(\"null\") = %q, want %q", got, KindString)
	}
}
