// Package checks runs plausibility rules against a typed table: numeric
// range limits and regex pattern conformance. Rule violations are data,
// not errors; only misuse (unknown column, non-numeric range target,
// invalid regex) is surfaced as an error.
package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
)

// Result is the outcome of one check over one column.
type Result struct {
	Column  string `yaml:"column"`
	Rule    string `yaml:"rule"`
	Checked int    `yaml:"checked"`
	Failed  int    `yaml:"failed"`
	// FailedRows are row indexes into the source table, in row order.
	FailedRows []int `yaml:"-"`
}

// FailedPct returns the failure rate over all rows checked.
func (r *Result) FailedPct() float64 {
	if r.Checked == 0 {
		return 0
	}
	return float64(r.Failed) * 100 / float64(r.Checked)
}

// Range flags values of a numeric column outside [lo, hi]. Null cells
// are skipped: missingness is a completeness concern, not a correctness
// one.
func Range(t *infer.TypedTable, column string, lo, hi float64) (*Result, error) {
	c, ok := t.Lookup(column)
	if !ok {
		return nil, fmt.Errorf("column %q not found", column)
	}
	if !c.Kind.IsNumeric() {
		return nil, fmt.Errorf("column %q is %s, not numeric", column, c.Kind)
	}
	if lo > hi {
		return nil, fmt.Errorf("range minimum %g exceeds maximum %g", lo, hi)
	}
	res := &Result{Column: column, Rule: fmt.Sprintf("range [%g, %g]", lo, hi), Checked: len(c.Data)}
	for i, d := range c.Data {
		if d.Null {
			continue
		}
		if d.Num < lo || d.Num > hi {
			res.Failed++
			res.FailedRows = append(res.FailedRows, i)
		}
	}
	return res, nil
}

// Pattern flags cells of any column whose text form does not match the
// pattern, anchored at the start. blanksValid controls whether null and
// empty cells count as conforming or as failures. An invalid pattern is
// a usage error with a readable cause, never a panic.
func Pattern(t *infer.TypedTable, column, pattern string, blanksValid bool) (*Result, error) {
	c, ok := t.Lookup(column)
	if !ok {
		return nil, fmt.Errorf("column %q not found", column)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	res := &Result{Column: column, Rule: "pattern " + pattern, Checked: len(c.Data)}
	for i, d := range c.Data {
		blank := d.Null || strings.TrimSpace(d.Render(c.Kind)) == ""
		if blank {
			if !blanksValid {
				res.Failed++
				res.FailedRows = append(res.FailedRows, i)
			}
			continue
		}
		if !re.MatchString(d.Render(c.Kind)) {
			res.Failed++
			res.FailedRows = append(res.FailedRows, i)
		}
	}
	return res, nil
}
