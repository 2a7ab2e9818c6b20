package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ReadOptions controls CSV ingestion.
type ReadOptions struct {
	// Delimiter for CSV. If 0, auto-detects among ',', ';', '\t' from the
	// header line.
	Delimiter rune
	// NAValues are tokens treated as null after trimming, in addition to
	// the empty string. Nil means DefaultNAValues.
	NAValues []string
	// MaxRows limits rows kept; 0 means unlimited.
	MaxRows int
}

// DefaultNAValues mirrors the tokens commonly used for "missing" in
// hand-edited CSVs.
var DefaultNAValues = []string{"NA", "N/A", "na", "n/a", "?", "-", "--"}

// Cleanup records what ingestion discarded so callers can report it.
type Cleanup struct {
	DroppedColumns int
	DroppedRows    int
}

var unnamedHeader = regexp.MustCompile(`(?i)^Unnamed(:\s*\d+)?$`)

// ReadCSV parses CSV text into a Table, owning all header and cell
// cleanup: BOM stripping, header trimming, unnamed and all-null column
// removal, NA-token to null conversion, and all-null row removal.
func ReadCSV(r io.Reader, name string, opt ReadOptions) (*Table, Cleanup, error) {
	var clean Cleanup
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, clean, fmt.Errorf("read csv: %w", err)
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(text)
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{Name: name}, clean, nil
		}
		return nil, clean, fmt.Errorf("read header: %w", err)
	}
	ncol := len(header)

	na := make(map[string]struct{})
	tokens := opt.NAValues
	if tokens == nil {
		tokens = DefaultNAValues
	}
	for _, v := range tokens {
		na[v] = struct{}{}
	}

	var rows [][]Cell
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, clean, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		if opt.MaxRows > 0 && len(rows) >= opt.MaxRows {
			continue
		}
		row := make([]Cell, ncol)
		for j := 0; j < ncol; j++ {
			if j >= len(rec) {
				row[j] = NullCell
				continue
			}
			row[j] = toCell(rec[j], na)
		}
		rows = append(rows, row)
	}

	// Drop rows that are entirely null to keep the row count honest.
	kept := rows[:0]
	for _, row := range rows {
		if allNull(row) {
			clean.DroppedRows++
			continue
		}
		kept = append(kept, row)
	}
	rows = kept

	t := &Table{Name: name}
	seen := make(map[string]int)
	for j := 0; j < ncol; j++ {
		hn := strings.TrimSpace(strings.TrimPrefix(header[j], "\ufeff"))
		if hn == "" || unnamedHeader.MatchString(hn) {
			clean.DroppedColumns++
			continue
		}
		col := Column{Name: uniqueName(hn, seen), Cells: make([]Cell, len(rows))}
		empty := true
		for i, row := range rows {
			col.Cells[i] = row[j]
			if !row[j].Null {
				empty = false
			}
		}
		if empty && len(rows) > 0 {
			clean.DroppedColumns++
			continue
		}
		t.Cols = append(t.Cols, col)
	}
	return t, clean, nil
}

func toCell(s string, na map[string]struct{}) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NullCell
	}
	if _, ok := na[trimmed]; ok {
		return NullCell
	}
	return Cell{Value: s}
}

func allNull(row []Cell) bool {
	for _, c := range row {
		if !c.Null {
			return false
		}
	}
	return true
}

// uniqueName disambiguates duplicate headers the way spreadsheets do.
func uniqueName(name string, seen map[string]int) string {
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s.%d", name, n)
}

// sniffDelimiter picks the candidate that splits the header line into
// the most fields. Quoted headers are rare enough that a raw count works.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}
	best := ','
	bestCount := strings.Count(line, ",")
	for _, cand := range []rune{';', '\t'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best
}
