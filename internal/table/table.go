// Package table holds the raw tabular data model: named columns of
// nullable string cells, all the same length. Tables are immutable after
// construction; operations that change data return a new Table.
package table

import "strings"

// Cell is a single nullable string value.
type Cell struct {
	Value string
	Null  bool
}

// NullCell is the canonical missing value.
var NullCell = Cell{Null: true}

// Column is an ordered sequence of cells under a cleaned header name.
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered set of equal-length columns.
type Table struct {
	Name string
	Cols []Column
}

// NumRows returns the row count (0 for a table with no columns).
func (t *Table) NumRows() int {
	if len(t.Cols) == 0 {
		return 0
	}
	return len(t.Cols[0].Cells)
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.Cols) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.Cols))
	for i, c := range t.Cols {
		out[i] = c.Name
	}
	return out
}

// Lookup returns the column with the given name.
func (t *Table) Lookup(name string) (*Column, bool) {
	for i := range t.Cols {
		if t.Cols[i].Name == name {
			return &t.Cols[i], true
		}
	}
	return nil, false
}

// Row materializes row i across all columns.
func (t *Table) Row(i int) []Cell {
	out := make([]Cell, len(t.Cols))
	for j := range t.Cols {
		out[j] = t.Cols[j].Cells[i]
	}
	return out
}

// IsBlank reports whether the cell is null or contains no usable text:
// empty/whitespace-only, or the literal "nan"/"none" left behind by
// upstream tools that stringify their missing markers.
func (c Cell) IsBlank() bool {
	if c.Null {
		return true
	}
	s := strings.TrimSpace(c.Value)
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "nan", "none":
		return true
	}
	return false
}

// Trimmed returns the cell text with surrounding whitespace removed,
// or "" for null cells.
func (c Cell) Trimmed() string {
	if c.Null {
		return ""
	}
	return strings.TrimSpace(c.Value)
}
