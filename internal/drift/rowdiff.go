package drift

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
)

// ErrNotComparable is returned when two tables share no columns. An
// empty diff would be indistinguishable from "no changes", so the
// undefined comparison gets its own outcome.
var ErrNotComparable = errors.New("tables share no columns; row comparison is not possible")

// fieldSep joins canonical cell values into a row key. A unit separator
// cannot appear in canonical forms produced by Datum.Canonical.
const fieldSep = "\x1f"

// DiffRows computes the exact multiset difference between two typed
// tables over a shared column set, without a primary key. Each row is
// identified by its canonical projected tuple plus an occurrence index
// (0 for the first identical row, 1 for the second, ...), so going from
// {x,x} to {x,x,x} reports one added row, not three. Returns row indexes
// into new (added) and base (removed), both in row order.
func DiffRows(base, new *infer.TypedTable, shared []string) (added, removed []int, err error) {
	if len(shared) == 0 {
		return nil, nil, ErrNotComparable
	}
	baseKeys, err := rowKeys(base, shared)
	if err != nil {
		return nil, nil, err
	}
	newKeys, err := rowKeys(new, shared)
	if err != nil {
		return nil, nil, err
	}

	// Full outer match on (normalized row, occurrence index): keys seen
	// on one side only are that side's additions/removals.
	baseByKey := make(map[string]int, len(baseKeys))
	for i, k := range baseKeys {
		baseByKey[k] = i
	}
	for i, k := range newKeys {
		if _, ok := baseByKey[k]; ok {
			delete(baseByKey, k)
		} else {
			added = append(added, i)
		}
	}
	for _, i := range baseByKey {
		removed = append(removed, i)
	}
	sort.Ints(removed)
	return added, removed, nil
}

// rowKeys builds the composite (tuple, occurrence) key per row.
func rowKeys(t *infer.TypedTable, shared []string) ([]string, error) {
	cols := make([]*infer.TypedColumn, len(shared))
	for i, name := range shared {
		c, ok := t.Lookup(name)
		if !ok {
			return nil, errors.New("shared column missing from table: " + name)
		}
		cols[i] = c
	}
	n := t.NumRows()
	keys := make([]string, n)
	occurrence := make(map[string]int, n)
	var b strings.Builder
	for row := 0; row < n; row++ {
		b.Reset()
		for i, c := range cols {
			if i > 0 {
				b.WriteString(fieldSep)
			}
			b.WriteString(c.Data[row].Canonical(c.Kind))
		}
		tuple := b.String()
		idx := occurrence[tuple]
		occurrence[tuple] = idx + 1
		keys[row] = tuple + fieldSep + fieldSep + strconv.Itoa(idx)
	}
	return keys, nil
}
