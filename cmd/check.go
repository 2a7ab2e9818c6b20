package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataloom-cli/internal/checks"
	"github.com/KaramelBytes/dataloom-cli/internal/infer"
	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

var (
	checkDelimiter   string
	checkColumn      string
	checkMin         float64
	checkMax         float64
	checkPattern     string
	checkPreset      string
	checkBlanksValid bool
	checkExport      string
	checkListPresets bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run correctness checks against a CSV column",
	Long: `Check flags values that look implausible: numbers outside a range you
set, or text that does not match a pattern (a built-in preset or your
own regex). Rule violations are reported with counts and a preview;
use --export to write every failing row to CSV.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkListPresets {
			fmt.Println("Available pattern presets:")
			for _, p := range checks.Presets {
				fmt.Printf("- %-12s %-55s e.g. %s (%s)\n", p.Name, p.Pattern, p.Examples, p.Notes)
			}
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("expected a CSV file argument")
		}
		if checkColumn == "" {
			return fmt.Errorf("--column is required")
		}

		delim, err := parseDelimiter(checkDelimiter)
		if err != nil {
			return err
		}
		raw, _, err := loadTable(args[0], delim)
		if err != nil {
			return err
		}
		typed, _ := infer.TypeTable(raw, activeConfig().Thresholds())

		var res *checks.Result
		switch {
		case cmd.Flags().Changed("min") || cmd.Flags().Changed("max"):
			lo, hi := checkMin, checkMax
			if !cmd.Flags().Changed("min") || !cmd.Flags().Changed("max") {
				// One-sided ranges fall back to the observed bound.
				c, ok := typed.Lookup(checkColumn)
				if !ok {
					return fmt.Errorf("column %q not found", checkColumn)
				}
				omin, omax, _, hasStats := c.NumStats()
				if !hasStats {
					return fmt.Errorf("column %q has no numeric values", checkColumn)
				}
				if !cmd.Flags().Changed("min") {
					lo = omin
				}
				if !cmd.Flags().Changed("max") {
					hi = omax
				}
			}
			res, err = checks.Range(typed, checkColumn, lo, hi)
		case checkPreset != "":
			p, ok := checks.PresetByName(checkPreset)
			if !ok {
				return fmt.Errorf("unknown preset %q (see --list-presets)", checkPreset)
			}
			res, err = checks.Pattern(typed, checkColumn, p.Pattern, checkBlanksValid)
		case checkPattern != "":
			res, err = checks.Pattern(typed, checkColumn, checkPattern, checkBlanksValid)
		default:
			return fmt.Errorf("nothing to check: pass --min/--max, --preset or --pattern")
		}
		if err != nil {
			return err
		}

		fmt.Printf("Check: %s on column %q\n", res.Rule, res.Column)
		fmt.Printf("Failures: %d / %d (%.2f%%)\n", res.Failed, res.Checked, res.FailedPct())
		if res.Failed > 0 {
			preview(typed, res)
		}
		if checkExport != "" && res.Failed > 0 {
			rows := failingRows(raw, res.FailedRows)
			if err := table.ExportCSV(checkExport, raw.Names(), rows); err != nil {
				return fmt.Errorf("export failures: %w", err)
			}
			fmt.Printf("✓ Wrote %d failing rows to %s\n", res.Failed, checkExport)
		}
		return nil
	},
}

func preview(t *infer.TypedTable, res *checks.Result) {
	c, ok := t.Lookup(res.Column)
	if !ok {
		return
	}
	limit := activeConfig().MaxPreviewRows
	if limit <= 0 {
		limit = 30
	}
	n := len(res.FailedRows)
	if n > limit {
		n = limit
	}
	fmt.Println("Failing values:")
	for _, row := range res.FailedRows[:n] {
		fmt.Printf("- row %d: %q\n", row+1, c.Data[row].Render(c.Kind))
	}
	if len(res.FailedRows) > n {
		fmt.Printf("(%d more; use --export for the full set)\n", len(res.FailedRows)-n)
	}
}

func failingRows(raw *table.Table, rows []int) [][]table.Cell {
	out := make([][]table.Cell, len(rows))
	for i, r := range rows {
		out[i] = raw.Row(r)
	}
	return out
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	checkCmd.Flags().StringVarP(&checkColumn, "column", "c", "", "column to check")
	checkCmd.Flags().Float64Var(&checkMin, "min", 0, "minimum acceptable value (numeric range check)")
	checkCmd.Flags().Float64Var(&checkMax, "max", 0, "maximum acceptable value (numeric range check)")
	checkCmd.Flags().StringVar(&checkPattern, "pattern", "", "regex the values must match")
	checkCmd.Flags().StringVar(&checkPreset, "preset", "", "built-in pattern preset name")
	checkCmd.Flags().BoolVar(&checkBlanksValid, "blanks-valid", true, "treat blank cells as valid for pattern checks")
	checkCmd.Flags().StringVar(&checkExport, "export", "", "write failing rows to this CSV path")
	checkCmd.Flags().BoolVar(&checkListPresets, "list-presets", false, "list the built-in pattern presets")
}
