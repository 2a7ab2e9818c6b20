package infer

import "github.com/KaramelBytes/dataloom-cli/internal/table"

// TypeTable classifies every column of a raw table independently, in
// order, with no cross-column interaction. Identical input always yields
// identical output. Returns the typed table and one Conversion per
// column that left Text.
func TypeTable(raw *table.Table, th Thresholds) (*TypedTable, []Conversion) {
	typed := &TypedTable{Name: raw.Name, Cols: make([]TypedColumn, 0, len(raw.Cols))}
	var log []Conversion
	nRows := raw.NumRows()
	for _, col := range raw.Cols {
		tc, conv := ClassifyColumn(col, nRows, th)
		typed.Cols = append(typed.Cols, tc)
		if conv != nil {
			log = append(log, *conv)
		}
	}
	return typed, log
}
