package infer

import (
	"strings"
	"time"

	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

// dateLayouts are tried in order by ParseDateTime. Day-first layouts
// come after ISO and US forms, matching how ambiguous dates were read
// when the thresholds were calibrated.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"02/01/2006",
	"02-01-2006",
	"01-02-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"20060102",
}

// ParseDateTime attempts a permissive multi-layout date/time parse.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// boolLexicon is the fixed token set accepted as booleans, matched on
// lower-cased trimmed text.
var boolLexicon = map[string]bool{
	"true": true, "false": false,
	"yes": true, "no": false,
	"y": true, "n": false,
	"1": true, "0": false,
}

// LookupBool maps a raw cell value through the boolean lexicon.
func LookupBool(s string) (bool, bool) {
	v, ok := boolLexicon[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

// Conversion records one column whose type changed during typing.
// Append-only: produced once per converted column, never mutated.
type Conversion struct {
	Column string `yaml:"column"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
}

// ClassifyColumn decides the semantic type of one raw column. Rules are
// attempted strictly in order — DateTime, Boolean, Numeric, Category —
// and the first rule whose threshold holds wins; a column that qualifies
// for nothing stays Text. nRows is the table row count (equal to
// len(col.Cells); passed for the blank-share guard).
func ClassifyColumn(col table.Column, nRows int, th Thresholds) (TypedColumn, *Conversion) {
	nonNull := 0
	for _, c := range col.Cells {
		if !c.Null {
			nonNull++
		}
	}
	// All-null columns qualify for nothing.
	if nonNull == 0 || nRows == 0 {
		return textColumn(col), nil
	}

	if tc, ok := tryDateTime(col, nonNull, th); ok {
		return tc, &Conversion{Column: col.Name, From: Text.String(), To: DateTime.String()}
	}
	if tc, ok := tryBoolean(col, nonNull, th); ok {
		return tc, &Conversion{Column: col.Name, From: Text.String(), To: Boolean.String()}
	}
	if tc, ok := tryNumeric(col, nRows, th); ok {
		return tc, &Conversion{Column: col.Name, From: Text.String(), To: tc.Kind.String()}
	}
	if tc, ok := tryCategory(col, nRows, th); ok {
		return tc, &Conversion{Column: col.Name, From: Text.String(), To: Category.String()}
	}
	return textColumn(col), nil
}

func tryDateTime(col table.Column, nonNull int, th Thresholds) (TypedColumn, bool) {
	data := make([]Datum, len(col.Cells))
	parsed := 0
	for i, c := range col.Cells {
		if c.Null {
			data[i] = Datum{Null: true}
			continue
		}
		if t, ok := ParseDateTime(c.Value); ok {
			data[i] = Datum{Time: t}
			parsed++
		} else {
			data[i] = Datum{Null: true}
		}
	}
	if float64(parsed)/float64(nonNull) < th.DateTimeMinRate {
		return TypedColumn{}, false
	}
	return TypedColumn{Name: col.Name, Kind: DateTime, Data: data}, true
}

func tryBoolean(col table.Column, nonNull int, th Thresholds) (TypedColumn, bool) {
	data := make([]Datum, len(col.Cells))
	mapped := 0
	for i, c := range col.Cells {
		if c.Null {
			data[i] = Datum{Null: true}
			continue
		}
		v, ok := boolLexicon[strings.ToLower(strings.TrimSpace(c.Value))]
		if ok {
			data[i] = Datum{Bool: v}
			mapped++
		} else {
			data[i] = Datum{Null: true}
		}
	}
	if float64(mapped)/float64(nonNull) < th.BoolMinRate {
		return TypedColumn{}, false
	}
	return TypedColumn{Name: col.Name, Kind: Boolean, Data: data}, true
}

func tryNumeric(col table.Column, nRows int, th Thresholds) (TypedColumn, bool) {
	data := make([]Datum, len(col.Cells))
	nonBlank, parsed := 0, 0
	allWhole := true
	for i, c := range col.Cells {
		if c.IsBlank() {
			data[i] = Datum{Null: true}
			continue
		}
		nonBlank++
		if f, ok := NormalizeNumeric(c); ok {
			data[i] = Datum{Num: f}
			parsed++
			if f != float64(int64(f)) {
				allWhole = false
			}
		} else {
			data[i] = Datum{Null: true}
		}
	}
	if nonBlank == 0 {
		return TypedColumn{}, false
	}
	if float64(parsed)/float64(nonBlank) < th.NumericMinRate {
		return TypedColumn{}, false
	}
	if float64(nonBlank)/float64(nRows) < th.NumericMinFilled {
		return TypedColumn{}, false
	}
	kind := Float
	if allWhole {
		kind = Integer
	}
	return TypedColumn{Name: col.Name, Kind: kind, Data: data}, true
}

func tryCategory(col table.Column, nRows int, th Thresholds) (TypedColumn, bool) {
	values := make([]string, 0, len(col.Cells))
	for _, c := range col.Cells {
		if !c.Null {
			values = append(values, strings.TrimSpace(c.Value))
		}
	}
	if !IsCategorical(values, nRows, th) {
		return TypedColumn{}, false
	}
	data := make([]Datum, len(col.Cells))
	for i, c := range col.Cells {
		if c.Null {
			data[i] = Datum{Null: true}
		} else {
			data[i] = Datum{Str: strings.TrimSpace(c.Value)}
		}
	}
	return TypedColumn{Name: col.Name, Kind: Category, Data: data}, true
}

func textColumn(col table.Column) TypedColumn {
	data := make([]Datum, len(col.Cells))
	for i, c := range col.Cells {
		if c.Null {
			data[i] = Datum{Null: true}
		} else {
			data[i] = Datum{Str: c.Value}
		}
	}
	return TypedColumn{Name: col.Name, Kind: Text, Data: data}
}
