package infer

import (
	"testing"

	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

func TestNormalizeNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"£1,000", 1000, true},
		{"$2,000.50", 2000.50, true},
		{"3000", 3000, true},
		{"  42  ", 42, true},
		{"12%", 0.12, true},
		{"99.5%", 0.995, true},
		{"-7", -7, true},
		{"1.5e3", 1500, true},
		{"", 0, false},
		{"nan", 0, false},
		{"None", 0, false},
		{"abc", 0, false},
		{"£", 0, false},
	}
	for _, tc := range cases {
		got, ok := NormalizeNumeric(table.Cell{Value: tc.in})
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("NormalizeNumeric(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalizeNumericNullCell(t *testing.T) {
	if _, ok := NormalizeNumeric(table.NullCell); ok {
		t.Fatal("null cell must not parse")
	}
}

// Re-normalizing the canonical rendering of a parsed value must be a
// fixed point.
func TestNormalizeNumericIdempotent(t *testing.T) {
	for _, in := range []string{"£1,000", "42", "12%", "3.14159", "-0.5"} {
		first, ok := NormalizeNumeric(table.Cell{Value: in})
		if !ok {
			t.Fatalf("NormalizeNumeric(%q) failed", in)
		}
		second, ok := NormalizeNumeric(table.Cell{Value: FormatNum(first)})
		if !ok || second != first {
			t.Errorf("not idempotent for %q: first %v, second %v (ok=%v)", in, first, second, ok)
		}
	}
}
