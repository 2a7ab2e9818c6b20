// Package infer converts raw string columns into semantically typed
// columns using tolerant, threshold-gated heuristics. Classification is
// per column, deterministic, and never fails: a cell that cannot be
// parsed becomes null, a column that qualifies for nothing stays Text.
package infer

import (
	"strconv"
	"strings"
	"time"
)

// Kind is the semantic type of a column.
type Kind int

const (
	Text Kind = iota
	Integer
	Float
	Boolean
	DateTime
	Category
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	case DateTime:
		return "DateTime"
	case Category:
		return "Category"
	default:
		return "Text"
	}
}

// Friendly returns the lay name used in reports.
func (k Kind) Friendly() string {
	switch k {
	case Integer:
		return "Whole number"
	case Float:
		return "Number (decimals)"
	case Boolean:
		return "Boolean"
	case DateTime:
		return "Date/Time"
	case Category:
		return "Category"
	default:
		return "Text"
	}
}

// IsNumeric reports whether the kind stores numbers.
func (k Kind) IsNumeric() bool { return k == Integer || k == Float }

// Datum is one parsed cell. Which payload field is meaningful is decided
// by the owning column's Kind; a column never mixes payload kinds.
type Datum struct {
	Null bool
	Num  float64
	Bool bool
	Time time.Time
	Str  string
}

// NullToken is the reserved canonical form for null cells. It contains a
// control byte so no literal cell text can collide with it.
const NullToken = "\x00null\x00"

// timeCanonical is the fixed-precision timestamp form used everywhere a
// datetime must compare equal across renderings.
const timeCanonical = "2006-01-02 15:04:05"

// Canonical renders a datum as the canonical string used for uniqueness
// counting and row diffing: values that are "the same" under loose
// typing (1 vs 1.0, equivalent date spellings) render identically.
func (d Datum) Canonical(k Kind) string {
	if d.Null {
		return NullToken
	}
	switch k {
	case Integer, Float:
		return FormatNum(d.Num)
	case Boolean:
		if d.Bool {
			return "true"
		}
		return "false"
	case DateTime:
		return d.Time.Format(timeCanonical)
	default:
		s := strings.TrimSpace(d.Str)
		if s == "" {
			return NullToken
		}
		return s
	}
}

// FormatNum renders a number at fixed precision with trailing zeros
// (and a trailing dot) trimmed, so 1 and 1.0 agree.
func FormatNum(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// TypedColumn is a column with an inferred kind and parsed values.
type TypedColumn struct {
	Name string
	Kind Kind
	Data []Datum
}

// MissingCount returns the number of null cells.
func (c *TypedColumn) MissingCount() int {
	n := 0
	for _, d := range c.Data {
		if d.Null {
			n++
		}
	}
	return n
}

// UniqueCount returns the number of distinct non-null values.
func (c *TypedColumn) UniqueCount() int {
	seen := make(map[string]struct{})
	for _, d := range c.Data {
		if d.Null {
			continue
		}
		seen[d.Canonical(c.Kind)] = struct{}{}
	}
	return len(seen)
}

// NumStats returns min, max and mean over non-null values of a numeric
// column. ok is false for non-numeric columns or all-null columns.
func (c *TypedColumn) NumStats() (min, max, mean float64, ok bool) {
	if !c.Kind.IsNumeric() {
		return 0, 0, 0, false
	}
	n := 0
	var sum float64
	for _, d := range c.Data {
		if d.Null {
			continue
		}
		if n == 0 || d.Num < min {
			min = d.Num
		}
		if n == 0 || d.Num > max {
			max = d.Num
		}
		sum += d.Num
		n++
	}
	if n == 0 {
		return 0, 0, 0, false
	}
	return min, max, sum / float64(n), true
}

// Values returns the non-null values of a numeric column in row order.
func (c *TypedColumn) Values() []float64 {
	if !c.Kind.IsNumeric() {
		return nil
	}
	out := make([]float64, 0, len(c.Data))
	for _, d := range c.Data {
		if !d.Null {
			out = append(out, d.Num)
		}
	}
	return out
}

// TypedTable is a table whose columns carry kinds and parsed values.
type TypedTable struct {
	Name string
	Cols []TypedColumn
}

// NumRows returns the row count.
func (t *TypedTable) NumRows() int {
	if len(t.Cols) == 0 {
		return 0
	}
	return len(t.Cols[0].Data)
}

// NumCols returns the column count.
func (t *TypedTable) NumCols() int { return len(t.Cols) }

// Names returns the column names in order.
func (t *TypedTable) Names() []string {
	out := make([]string, len(t.Cols))
	for i := range t.Cols {
		out[i] = t.Cols[i].Name
	}
	return out
}

// Lookup returns the column with the given name.
func (t *TypedTable) Lookup(name string) (*TypedColumn, bool) {
	for i := range t.Cols {
		if t.Cols[i].Name == name {
			return &t.Cols[i], true
		}
	}
	return nil, false
}

// Render converts a datum back to display text ("" for null), used when
// materializing rows for previews and CSV export.
func (d Datum) Render(k Kind) string {
	if d.Null {
		return ""
	}
	switch k {
	case Integer, Float:
		return FormatNum(d.Num)
	case Boolean:
		if d.Bool {
			return "true"
		}
		return "false"
	case DateTime:
		return d.Time.Format(timeCanonical)
	default:
		return d.Str
	}
}
