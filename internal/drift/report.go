package drift

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

// TypeChange is one shared column whose high-level type differs between
// baseline and the coerced new table.
type TypeChange struct {
	Column string `yaml:"column"`
	Old    string `yaml:"old"`
	New    string `yaml:"new"`
}

// Report is the outcome of one baseline-vs-new comparison. Produced
// fresh per comparison, never persisted across comparisons.
type Report struct {
	ID       string `yaml:"id"`
	BaseName string `yaml:"base"`
	NewName  string `yaml:"new"`
	BaseRows int    `yaml:"base_rows"`
	NewRows  int    `yaml:"new_rows"`

	AddedColumns   []string `yaml:"added_columns"`
	RemovedColumns []string `yaml:"removed_columns"`
	SharedColumns  []string `yaml:"shared_columns"`

	TypeChanges []TypeChange `yaml:"type_changes"`

	// Comparable is false when no columns are shared; row fields are
	// meaningless in that case.
	Comparable  bool  `yaml:"comparable"`
	AddedRows   []int `yaml:"-"`
	RemovedRows []int `yaml:"-"`
	AddedCount  int   `yaml:"added_rows"`
	RemovedCount int  `yaml:"removed_rows"`

	// Coerced is the new table after family coercion, kept so callers
	// can materialize added rows for preview and export.
	Coerced *infer.TypedTable `yaml:"-"`
	base    *infer.TypedTable
}

// Compare runs the full drift pipeline: derive the baseline family map,
// coerce the new raw table to it, diff schemas, and diff rows as a
// multiset over the shared columns. A disjoint schema yields a report
// with Comparable=false rather than an error; schema drift is still
// meaningful there.
func Compare(base *infer.TypedTable, newRaw *table.Table) (*Report, error) {
	fm := Families(base)
	coerced := Coerce(newRaw, fm)

	rep := &Report{
		ID:       uuid.NewString(),
		BaseName: base.Name,
		NewName:  coerced.Name,
		BaseRows: base.NumRows(),
		NewRows:  coerced.NumRows(),
		Coerced:  coerced,
		base:     base,
	}

	baseNames := toSet(base.Names())
	newNames := toSet(coerced.Names())
	rep.AddedColumns = sortedDiff(newNames, baseNames)
	rep.RemovedColumns = sortedDiff(baseNames, newNames)
	rep.SharedColumns = sortedIntersect(baseNames, newNames)

	for _, name := range rep.SharedColumns {
		bc, _ := base.Lookup(name)
		nc, _ := coerced.Lookup(name)
		oldT := FamilyOf(bc.Kind).Friendly()
		newT := FamilyOf(nc.Kind).Friendly()
		if oldT != newT {
			rep.TypeChanges = append(rep.TypeChanges, TypeChange{Column: name, Old: oldT, New: newT})
		}
	}

	added, removed, err := DiffRows(base, coerced, rep.SharedColumns)
	if err != nil {
		if err == ErrNotComparable {
			rep.Comparable = false
			return rep, nil
		}
		return nil, fmt.Errorf("diff rows: %w", err)
	}
	rep.Comparable = true
	rep.AddedRows = added
	rep.RemovedRows = removed
	rep.AddedCount = len(added)
	rep.RemovedCount = len(removed)
	return rep, nil
}

// AddedRowCells materializes the added rows (from the coerced new
// table) over the shared columns, for preview and CSV export.
func (r *Report) AddedRowCells() [][]table.Cell {
	return materialize(r.Coerced, r.SharedColumns, r.AddedRows)
}

// RemovedRowCells materializes the removed rows from the baseline.
func (r *Report) RemovedRowCells() [][]table.Cell {
	return materialize(r.base, r.SharedColumns, r.RemovedRows)
}

func materialize(t *infer.TypedTable, names []string, rows []int) [][]table.Cell {
	cols := make([]*infer.TypedColumn, 0, len(names))
	for _, n := range names {
		if c, ok := t.Lookup(n); ok {
			cols = append(cols, c)
		}
	}
	out := make([][]table.Cell, len(rows))
	for i, row := range rows {
		rec := make([]table.Cell, len(cols))
		for j, c := range cols {
			d := c.Data[row]
			if d.Null {
				rec[j] = table.NullCell
			} else {
				rec[j] = table.Cell{Value: d.Render(c.Kind)}
			}
		}
		out[i] = rec
	}
	return out
}

// Markdown renders the drift report in the compact bracket-section
// style shared with the profiling report.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DRIFT SUMMARY]\n")
	fmt.Fprintf(&b, "Run: %s\n", r.ID)
	fmt.Fprintf(&b, "Baseline: %s (%d rows)\n", r.BaseName, r.BaseRows)
	fmt.Fprintf(&b, "New: %s (%d rows)\n\n", r.NewName, r.NewRows)

	b.WriteString("[SCHEMA CHANGES]\n")
	writeNameList(&b, "Added columns", r.AddedColumns)
	writeNameList(&b, "Removed columns", r.RemovedColumns)
	if len(r.TypeChanges) == 0 {
		b.WriteString("Type changes: none (after family coercion)\n")
	} else {
		b.WriteString("Type changes:\n")
		for _, tc := range r.TypeChanges {
			fmt.Fprintf(&b, "- %s: %s -> %s\n", tc.Column, tc.Old, tc.New)
		}
	}

	b.WriteString("\n[ROW CHANGES]\n")
	if !r.Comparable {
		b.WriteString("Not comparable: the files share no columns.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Added rows: %d | Removed rows: %d\n", r.AddedCount, r.RemovedCount)
	b.WriteString("Computed key-free as a multiset match over shared columns; duplicates are counted, not collapsed.\n")

	writeRowPreview(&b, "ADDED ROW PREVIEW", r.SharedColumns, r.AddedRowCells())
	writeRowPreview(&b, "REMOVED ROW PREVIEW", r.SharedColumns, r.RemovedRowCells())
	return b.String()
}

const previewRows = 30

func writeRowPreview(b *strings.Builder, title string, header []string, rows [][]table.Cell) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "\n[%s]\n", title)
	shown := rows
	if len(shown) > previewRows {
		shown = shown[:previewRows]
	}
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range shown {
		b.WriteString("|")
		for _, c := range row {
			v := c.Value
			if c.Null {
				v = ""
			}
			b.WriteString(" " + strings.ReplaceAll(v, "|", "/") + " |")
		}
		b.WriteString("\n")
	}
	if len(rows) > previewRows {
		fmt.Fprintf(b, "(%d more; export to CSV for the full set)\n", len(rows)-previewRows)
	}
}

func writeNameList(b *strings.Builder, label string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(b, "%s: none\n", label)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(names, ", "))
}

func toSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func sortedDiff(a, b map[string]struct{}) []string {
	var out []string
	for n := range a {
		if _, ok := b[n]; !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func sortedIntersect(a, b map[string]struct{}) []string {
	var out []string
	for n := range a {
		if _, ok := b[n]; ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
