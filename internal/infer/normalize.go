package infer

import (
	"strconv"
	"strings"

	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

// NormalizeNumeric parses a messy numeric cell: leading/trailing space,
// a trailing percent sign, currency symbols and thousands commas are all
// tolerated. Percent values are scaled to the unit interval. Failure is
// reported as ok=false, never as an error — one malformed cell must not
// abort classification of its column.
func NormalizeNumeric(c table.Cell) (float64, bool) {
	if c.Null {
		return 0, false
	}
	s := strings.TrimSpace(c.Value)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "none":
		return 0, false
	}

	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if percent {
		f /= 100
	}
	return f, true
}
