package profile

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

func rawCol(name string, vals ...string) table.Column {
	cells := make([]table.Cell, len(vals))
	for i, v := range vals {
		if v == "" {
			cells[i] = table.NullCell
		} else {
			cells[i] = table.Cell{Value: v}
		}
	}
	return table.Column{Name: name, Cells: cells}
}

func buildReport(t *testing.T, raw *table.Table) *Report {
	t.Helper()
	typed, conversions := infer.TypeTable(raw, infer.DefaultThresholds())
	return Build(typed, conversions)
}

func TestBuildColumnSummaries(t *testing.T) {
	raw := &table.Table{Name: "people.csv", Cols: []table.Column{
		rawCol("age", "30", "40", "50", ""),
		rawCol("name", "ann", "bob", "cat", "dee"),
	}}
	rep := buildReport(t, raw)

	if rep.Rows != 4 || rep.Columns != 2 {
		t.Fatalf("shape: %d rows %d cols", rep.Rows, rep.Columns)
	}
	if rep.ID == "" || rep.Name != "people.csv" {
		t.Fatalf("header fields: %+v", rep)
	}

	age := rep.Cols[0]
	if age.Name != "age" || age.Type != "Integer" {
		t.Fatalf("age summary: %+v", age)
	}
	if age.Missing != 1 || age.MissingPct != 25 || age.MissingBand != "high" {
		t.Fatalf("age missingness: %+v", age)
	}
	if age.Numeric == nil {
		t.Fatal("numeric column must carry distribution stats")
	}
	if age.Numeric.Count != 3 || age.Numeric.Min != 30 || age.Numeric.Max != 50 || age.Numeric.Mean != 40 {
		t.Fatalf("age stats: %+v", age.Numeric)
	}

	name := rep.Cols[1]
	if name.Type != "Text" || name.Numeric != nil {
		t.Fatalf("name summary: %+v", name)
	}
	if name.Unique != 4 || name.DistinctRatio != 1.0 || name.CardinalityBand != "key-like" {
		t.Fatalf("name cardinality: %+v", name)
	}
}

func TestMissingBands(t *testing.T) {
	cases := map[float64]string{
		0:   "none",
		3:   "low",
		5:   "low",
		12:  "moderate",
		20:  "moderate",
		35:  "high",
		50:  "high",
		80:  "severe",
		100: "severe",
	}
	for pct, want := range cases {
		if got := missingBand(pct); got != want {
			t.Errorf("missingBand(%v) = %q, want %q", pct, got, want)
		}
	}
}

func TestCardinalityBands(t *testing.T) {
	cases := map[float64]string{
		1.0:  "key-like",
		0.90: "key-like",
		0.5:  "medium",
		0.10: "medium",
		0.01: "category-like",
	}
	for ratio, want := range cases {
		if got := cardinalityBand(ratio); got != want {
			t.Errorf("cardinalityBand(%v) = %q, want %q", ratio, got, want)
		}
	}
}

func TestDuplicateRows(t *testing.T) {
	raw := &table.Table{Name: "d.csv", Cols: []table.Column{
		rawCol("a", "1", "1", "1", "2"),
		rawCol("b", "x", "x", "y", "y"),
	}}
	rep := buildReport(t, raw)
	// Rows 0 and 1 are identical; row 1 counts as the duplicate.
	if rep.DuplicateRows != 1 {
		t.Fatalf("DuplicateRows = %d, want 1", rep.DuplicateRows)
	}
}

func TestMedianRowCompleteness(t *testing.T) {
	raw := &table.Table{Name: "c.csv", Cols: []table.Column{
		rawCol("a", "1", "", "3"),
		rawCol("b", "x", "", "z"),
	}}
	rep := buildReport(t, raw)
	// Row completeness: 100, 0, 100 -> median 100.
	if rep.RowCompletenessMedian != 100 {
		t.Fatalf("RowCompletenessMedian = %v, want 100", rep.RowCompletenessMedian)
	}
}

func TestTopValuesForCategoricalColumns(t *testing.T) {
	vals := make([]string, 0, 90)
	for i := 0; i < 90; i++ {
		switch {
		case i < 50:
			vals = append(vals, "red")
		case i < 80:
			vals = append(vals, "green")
		default:
			vals = append(vals, "blue")
		}
	}
	raw := &table.Table{Name: "t.csv", Cols: []table.Column{rawCol("color", vals...)}}
	rep := buildReport(t, raw)
	c := rep.Cols[0]
	if c.Type != "Category" {
		t.Fatalf("expected Category, got %s", c.Type)
	}
	if len(c.TopValues) != 3 || c.TopValues[0].Value != "red" || c.TopValues[0].Count != 50 {
		t.Fatalf("TopValues = %+v", c.TopValues)
	}
	if c.TopValues[1].Value != "green" || c.TopValues[2].Value != "blue" {
		t.Fatalf("TopValues not sorted by count: %+v", c.TopValues)
	}
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	if got := quantile(sorted, 0.5); got != 2.5 {
		t.Fatalf("median of 1..4 = %v, want 2.5", got)
	}
	if got := quantile(sorted, 0); got != 1 {
		t.Fatalf("q0 = %v, want 1", got)
	}
	if got := quantile(sorted, 1); got != 4 {
		t.Fatalf("q1 = %v, want 4", got)
	}
	if got := quantile([]float64{7}, 0.95); got != 7 {
		t.Fatalf("single value = %v, want 7", got)
	}
}

func TestDescribeOutlierRate(t *testing.T) {
	// 1..9 plus a wild 1000: exactly one value outside the IQR fences.
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 1000}
	s := describe(vals)
	if s == nil {
		t.Fatal("describe returned nil")
	}
	if s.OutlierRate != 0.1 {
		t.Fatalf("OutlierRate = %v, want 0.1", s.OutlierRate)
	}
	if s.Min != 1 || s.Max != 1000 || s.Count != 10 {
		t.Fatalf("summary: %+v", s)
	}
}

func TestDescribeEmpty(t *testing.T) {
	if describe(nil) != nil {
		t.Fatal("all-null column must yield no numeric summary")
	}
}

func TestMarkdownSections(t *testing.T) {
	raw := &table.Table{Name: "m.csv", Cols: []table.Column{
		rawCol("age", "30", "40", "50", "60"),
	}}
	rep := buildReport(t, raw)
	md := rep.Markdown()
	for _, want := range []string{
		"[DATASET SUMMARY]",
		"[AUTO-CONVERSIONS]",
		"[SCHEMA]",
		"[DISTRIBUTION]",
		"age",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
