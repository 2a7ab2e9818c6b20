package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
	"github.com/KaramelBytes/dataloom-cli/internal/profile"
)

var (
	profDelimiter string
	profOutput    string
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Infer column types and summarize a CSV dataset",
	Long: `Profile loads a CSV, infers a semantic type per column (date/time,
boolean, whole number, decimal, category or text) using tolerant
thresholds, and prints a summary: unique and missing counts per column,
missingness and cardinality bands, numeric distribution statistics and
top categorical values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delim, err := parseDelimiter(profDelimiter)
		if err != nil {
			return err
		}
		raw, cleanup, err := loadTable(args[0], delim)
		if err != nil {
			return err
		}
		typed, conversions := infer.TypeTable(raw, activeConfig().Thresholds())
		rep := profile.Build(typed, conversions)
		rep.DroppedColumns = cleanup.DroppedColumns
		rep.DroppedRows = cleanup.DroppedRows
		if debug {
			fmt.Printf("parsed %d rows × %d columns (dropped %d columns, %d rows)\n",
				raw.NumRows(), raw.NumCols(), cleanup.DroppedColumns, cleanup.DroppedRows)
		}
		return emit(rep.Markdown, rep, profOutput)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	profileCmd.Flags().StringVarP(&profOutput, "output", "o", "", "optional path to write the report")
}
