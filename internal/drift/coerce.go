package drift

import (
	"strings"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

// Coerce force-parses every column of raw into the family the baseline
// assigned to that name. This is not re-inference: no threshold is
// re-checked, so a new file whose values are merely messier than the
// baseline's cannot flip a column's reported type. A cell the forced
// parse rejects becomes null; a column absent from the family map stays
// Text (it is a newly added column, reported as schema drift instead).
func Coerce(raw *table.Table, fm FamilyMap) *infer.TypedTable {
	typed := &infer.TypedTable{Name: raw.Name, Cols: make([]infer.TypedColumn, 0, len(raw.Cols))}
	for _, col := range raw.Cols {
		fam, ok := fm[col.Name]
		if !ok {
			fam = FamilyText
		}
		typed.Cols = append(typed.Cols, coerceColumn(col, fam))
	}
	return typed
}

func coerceColumn(col table.Column, fam Family) infer.TypedColumn {
	data := make([]infer.Datum, len(col.Cells))
	kind := kindOf(fam)
	for i, c := range col.Cells {
		data[i] = coerceCell(c, fam)
	}
	return infer.TypedColumn{Name: col.Name, Kind: kind, Data: data}
}

func kindOf(fam Family) infer.Kind {
	switch fam {
	case FamilyDateTime:
		return infer.DateTime
	case FamilyBoolean:
		return infer.Boolean
	case FamilyInt:
		return infer.Integer
	case FamilyFloat:
		return infer.Float
	case FamilyCategory:
		return infer.Category
	default:
		return infer.Text
	}
}

func coerceCell(c table.Cell, fam Family) infer.Datum {
	if c.Null {
		return infer.Datum{Null: true}
	}
	switch fam {
	case FamilyDateTime:
		if t, ok := infer.ParseDateTime(c.Value); ok {
			return infer.Datum{Time: t}
		}
	case FamilyBoolean:
		if b, ok := infer.LookupBool(c.Value); ok {
			return infer.Datum{Bool: b}
		}
	case FamilyInt:
		// Forced integer parse: a fractional value is a failure, not a
		// silent promotion to float.
		if f, ok := infer.NormalizeNumeric(c); ok && f == float64(int64(f)) {
			return infer.Datum{Num: f}
		}
	case FamilyFloat:
		if f, ok := infer.NormalizeNumeric(c); ok {
			return infer.Datum{Num: f}
		}
	case FamilyCategory:
		s := strings.TrimSpace(c.Value)
		if s != "" {
			return infer.Datum{Str: s}
		}
	default:
		return infer.Datum{Str: c.Value}
	}
	return infer.Datum{Null: true}
}
