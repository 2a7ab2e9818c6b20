// Package drift compares a baseline typed table against a new upload:
// it coerces the new table to the baseline's type families, then
// computes exact schema and key-free multiset row differences.
package drift

import "github.com/KaramelBytes/dataloom-cli/internal/infer"

// Family is the coarse semantic grouping used for cross-table coercion.
// Coarser than infer.Kind only in reporting, where int and float are
// both presented as "Numeric" to suppress noise.
type Family string

const (
	FamilyDateTime Family = "datetime"
	FamilyBoolean  Family = "boolean"
	FamilyInt      Family = "int"
	FamilyFloat    Family = "float"
	FamilyCategory Family = "category"
	FamilyText     Family = "text"
)

// Friendly returns the lay name used in drift reports. Int and float
// collapse to "Numeric" so minor numeric-type churn never reads as drift.
func (f Family) Friendly() string {
	switch f {
	case FamilyDateTime:
		return "Date/Time"
	case FamilyBoolean:
		return "Boolean"
	case FamilyInt, FamilyFloat:
		return "Numeric"
	case FamilyCategory:
		return "Category"
	default:
		return "Text"
	}
}

// FamilyOf maps a semantic kind to its family.
func FamilyOf(k infer.Kind) Family {
	switch k {
	case infer.DateTime:
		return FamilyDateTime
	case infer.Boolean:
		return FamilyBoolean
	case infer.Integer:
		return FamilyInt
	case infer.Float:
		return FamilyFloat
	case infer.Category:
		return FamilyCategory
	default:
		return FamilyText
	}
}

// FamilyMap maps column names to families. Derived once from a baseline
// typed table and fixed for the lifetime of a comparison.
type FamilyMap map[string]Family

// Families derives the family map of a typed table.
func Families(t *infer.TypedTable) FamilyMap {
	fm := make(FamilyMap, len(t.Cols))
	for i := range t.Cols {
		fm[t.Cols[i].Name] = FamilyOf(t.Cols[i].Kind)
	}
	return fm
}
