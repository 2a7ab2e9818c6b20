package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataloom-cli/internal/drift"
	"github.com/KaramelBytes/dataloom-cli/internal/infer"
	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

var (
	diffDelimiter     string
	diffOutput        string
	diffExportAdded   string
	diffExportRemoved string
)

var diffCmd = &cobra.Command{
	Use:   "diff <baseline> <new>",
	Short: "Compare a new CSV snapshot against a baseline",
	Long: `Diff infers types for the baseline, coerces the new file to the
baseline's type families (so CSV type guessing cannot raise false
alarms), and reports schema changes plus exact row-level changes. Row
changes are computed key-free as a multiset match over the shared
columns: duplicates are counted, not collapsed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delim, err := parseDelimiter(diffDelimiter)
		if err != nil {
			return err
		}
		baseRaw, _, err := loadTable(args[0], delim)
		if err != nil {
			return fmt.Errorf("baseline: %w", err)
		}
		newRaw, _, err := loadTable(args[1], delim)
		if err != nil {
			return fmt.Errorf("new: %w", err)
		}

		baseTyped, _ := infer.TypeTable(baseRaw, activeConfig().Thresholds())
		rep, err := drift.Compare(baseTyped, newRaw)
		if err != nil {
			return err
		}

		if diffExportAdded != "" && rep.Comparable {
			if err := table.ExportCSV(diffExportAdded, rep.SharedColumns, rep.AddedRowCells()); err != nil {
				return fmt.Errorf("export added rows: %w", err)
			}
			fmt.Printf("✓ Wrote %d added rows to %s\n", rep.AddedCount, diffExportAdded)
		}
		if diffExportRemoved != "" && rep.Comparable {
			if err := table.ExportCSV(diffExportRemoved, rep.SharedColumns, rep.RemovedRowCells()); err != nil {
				return fmt.Errorf("export removed rows: %w", err)
			}
			fmt.Printf("✓ Wrote %d removed rows to %s\n", rep.RemovedCount, diffExportRemoved)
		}
		if !rep.Comparable {
			fmt.Println("⚠ Warning: the files share no columns; only schema drift is reported.")
		}
		return emit(rep.Markdown, rep, diffOutput)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVar(&diffDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	diffCmd.Flags().StringVarP(&diffOutput, "output", "o", "", "optional path to write the report")
	diffCmd.Flags().StringVar(&diffExportAdded, "export-added", "", "write added rows to this CSV path")
	diffCmd.Flags().StringVar(&diffExportRemoved, "export-removed", "", "write removed rows to this CSV path")
}
