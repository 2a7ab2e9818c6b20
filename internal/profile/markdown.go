package profile

import (
	"fmt"
	"strings"
)

// Markdown renders a compact report suitable for terminals or docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	fmt.Fprintf(&b, "Run: %s\n", r.ID)
	if r.Name != "" {
		fmt.Fprintf(&b, "File: %s\n", r.Name)
	}
	fmt.Fprintf(&b, "Rows: %d\n", r.Rows)
	fmt.Fprintf(&b, "Columns: %d\n", r.Columns)
	if r.DroppedColumns > 0 || r.DroppedRows > 0 {
		fmt.Fprintf(&b, "Dropped during import: %d empty/unnamed columns, %d empty rows\n", r.DroppedColumns, r.DroppedRows)
	}
	if r.DuplicateRows > 0 {
		fmt.Fprintf(&b, "Duplicate rows: %d\n", r.DuplicateRows)
	}
	fmt.Fprintf(&b, "Median row completeness: %.1f%%\n", r.RowCompletenessMedian)

	if len(r.Conversions) > 0 {
		b.WriteString("\n[AUTO-CONVERSIONS]\n")
		for _, c := range r.Conversions {
			fmt.Fprintf(&b, "- %s: %s -> %s\n", c.Column, c.From, c.To)
		}
	}

	b.WriteString("\n[SCHEMA]\n")
	for _, c := range r.Cols {
		fmt.Fprintf(&b, "- %s: %s (unique %d, missing %.1f%% %s, distinct ratio %.4f %s)",
			c.Name, c.Friendly, c.Unique, c.MissingPct, c.MissingBand, c.DistinctRatio, c.CardinalityBand)
		if c.Numeric != nil {
			fmt.Fprintf(&b, "; mean %.4g, min %.4g, max %.4g", c.Numeric.Mean, c.Numeric.Min, c.Numeric.Max)
		}
		b.WriteString("\n")
	}

	wroteHeader := false
	for _, c := range r.Cols {
		if c.Numeric == nil {
			continue
		}
		if !wroteHeader {
			b.WriteString("\n[DISTRIBUTION]\n")
			wroteHeader = true
		}
		n := c.Numeric
		fmt.Fprintf(&b, "- %s: count %d, mean %.4g, std %.4g, min %.4g, p5 %.4g, p25 %.4g, median %.4g, p75 %.4g, p95 %.4g, max %.4g",
			c.Name, n.Count, n.Mean, n.Std, n.Min, n.P5, n.P25, n.Median, n.P75, n.P95, n.Max)
		if n.OutlierRate > 0 {
			fmt.Fprintf(&b, "; outliers by IQR ~%.2f%%", n.OutlierRate*100)
		}
		b.WriteString("\n")
	}

	wroteHeader = false
	for _, c := range r.Cols {
		if len(c.TopValues) == 0 {
			continue
		}
		if !wroteHeader {
			b.WriteString("\n[TOP VALUES]\n")
			wroteHeader = true
		}
		fmt.Fprintf(&b, "- %s: ", c.Name)
		for i, tv := range c.TopValues {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s(%d)", strings.ReplaceAll(tv.Value, "|", "/"), tv.Count)
		}
		if c.Unique > len(c.TopValues) {
			fmt.Fprintf(&b, "; unique=%d", c.Unique)
		}
		b.WriteString("\n")
	}
	return b.String()
}
