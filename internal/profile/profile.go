// Package profile summarizes a typed table: per-column types,
// completeness, cardinality and distribution statistics, rendered as
// markdown or exported as yaml.
package profile

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
)

// ValueCount is one categorical value and how often it occurs.
type ValueCount struct {
	Value string `yaml:"value"`
	Count int    `yaml:"count"`
}

// NumSummary carries distribution statistics for a numeric column.
type NumSummary struct {
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	Std    float64 `yaml:"std"`
	Min    float64 `yaml:"min"`
	P5     float64 `yaml:"p5"`
	P25    float64 `yaml:"p25"`
	Median float64 `yaml:"median"`
	P75    float64 `yaml:"p75"`
	P95    float64 `yaml:"p95"`
	Max    float64 `yaml:"max"`
	// OutlierRate is the share of values outside Q1/Q3 by 1.5 IQR.
	OutlierRate float64 `yaml:"outlier_rate"`
}

// ColumnSummary is the per-column profiling record.
type ColumnSummary struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Friendly string `yaml:"friendly_type"`

	Unique  int `yaml:"unique"`
	Missing int `yaml:"missing"`

	MissingPct  float64 `yaml:"missing_pct"`
	MissingBand string  `yaml:"missing_band"`

	DistinctRatio   float64 `yaml:"distinct_ratio"`
	CardinalityBand string  `yaml:"cardinality_band"`

	Numeric   *NumSummary  `yaml:"numeric,omitempty"`
	TopValues []ValueCount `yaml:"top_values,omitempty"`
}

// Report is the profiling output for one dataset.
type Report struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Rows           int    `yaml:"rows"`
	Columns        int    `yaml:"columns"`
	DroppedColumns int    `yaml:"dropped_columns"`
	DroppedRows    int    `yaml:"dropped_rows"`
	DuplicateRows  int    `yaml:"duplicate_rows"`

	// RowCompletenessMedian is the median share of filled fields per row.
	RowCompletenessMedian float64 `yaml:"row_completeness_median"`

	Conversions []infer.Conversion `yaml:"conversions"`
	Cols        []ColumnSummary    `yaml:"cols"`
}

const topValueCount = 10

// Build profiles a typed table. Pure: same input, same report (modulo
// the run ID).
func Build(t *infer.TypedTable, conversions []infer.Conversion) *Report {
	rep := &Report{
		ID:          uuid.NewString(),
		Name:        t.Name,
		Rows:        t.NumRows(),
		Columns:     t.NumCols(),
		Conversions: conversions,
	}
	nRows := t.NumRows()

	for i := range t.Cols {
		c := &t.Cols[i]
		s := ColumnSummary{
			Name:     c.Name,
			Type:     c.Kind.String(),
			Friendly: c.Kind.Friendly(),
			Unique:   c.UniqueCount(),
			Missing:  c.MissingCount(),
		}
		if nRows > 0 {
			s.MissingPct = float64(s.Missing) * 100 / float64(nRows)
			s.DistinctRatio = float64(s.Unique) / float64(nRows)
		}
		s.MissingBand = missingBand(s.MissingPct)
		s.CardinalityBand = cardinalityBand(s.DistinctRatio)
		if c.Kind.IsNumeric() {
			s.Numeric = describe(c.Values())
		}
		if c.Kind == infer.Category || c.Kind == infer.Boolean {
			s.TopValues = topValues(c, topValueCount)
		}
		rep.Cols = append(rep.Cols, s)
	}

	rep.RowCompletenessMedian = medianRowCompleteness(t)
	rep.DuplicateRows = duplicateRows(t)
	return rep
}

// missingBand groups missingness into the severity bands used across
// reports.
func missingBand(pct float64) string {
	switch {
	case pct == 0:
		return "none"
	case pct <= 5:
		return "low"
	case pct <= 20:
		return "moderate"
	case pct <= 50:
		return "high"
	default:
		return "severe"
	}
}

// cardinalityBand groups the distinct ratio: near 1.0 looks like a key,
// near 0 looks like a category.
func cardinalityBand(ratio float64) string {
	switch {
	case ratio >= 0.90:
		return "key-like"
	case ratio >= 0.10:
		return "medium"
	default:
		return "category-like"
	}
}

func topValues(c *infer.TypedColumn, k int) []ValueCount {
	counts := make(map[string]int)
	for _, d := range c.Data {
		if d.Null {
			continue
		}
		counts[d.Canonical(c.Kind)]++
	}
	out := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// medianRowCompleteness computes the median percentage of filled fields
// per row.
func medianRowCompleteness(t *infer.TypedTable) float64 {
	nRows := t.NumRows()
	nCols := t.NumCols()
	if nRows == 0 || nCols == 0 {
		return 0
	}
	filled := make([]float64, nRows)
	for i := range t.Cols {
		for row, d := range t.Cols[i].Data {
			if !d.Null {
				filled[row]++
			}
		}
	}
	for row := range filled {
		filled[row] = filled[row] * 100 / float64(nCols)
	}
	sort.Float64s(filled)
	return quantile(filled, 0.5)
}

// duplicateRows counts rows beyond the first occurrence of each
// identical canonical tuple.
func duplicateRows(t *infer.TypedTable) int {
	nRows := t.NumRows()
	if nRows == 0 || t.NumCols() == 0 {
		return 0
	}
	seen := make(map[string]struct{}, nRows)
	dups := 0
	var b strings.Builder
	for row := 0; row < nRows; row++ {
		b.Reset()
		for i := range t.Cols {
			if i > 0 {
				b.WriteByte('\x1f')
			}
			b.WriteString(t.Cols[i].Data[row].Canonical(t.Cols[i].Kind))
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			dups++
		} else {
			seen[key] = struct{}{}
		}
	}
	return dups
}
