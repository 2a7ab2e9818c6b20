package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	cfgpkg "github.com/KaramelBytes/dataloom-cli/internal/config"
	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

// activeConfig returns the loaded configuration, falling back to
// defaults when a command runs without the cobra initializer (tests).
func activeConfig() *cfgpkg.Global {
	if cfg == nil {
		cfg = cfgpkg.Default()
	}
	return cfg
}

// parseDelimiter maps a flag value to a delimiter rune; empty means
// auto-detect.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", s)
	}
}

// loadTable reads and cleans a CSV file.
func loadTable(path string, delim rune) (*table.Table, table.Cleanup, error) {
	c := activeConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, table.Cleanup{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	opt := table.ReadOptions{Delimiter: delim, MaxRows: c.MaxRows}
	if len(c.NAValues) > 0 {
		opt.NAValues = c.NAValues
	}
	t, cleanup, err := table.ReadCSV(f, filepath.Base(path), opt)
	if err != nil {
		return nil, cleanup, err
	}
	return t, cleanup, nil
}

// emit writes a report either as rendered markdown or as yaml,
// to stdout or to the --output path.
func emit(markdown func() string, doc any, outputPath string) error {
	c := activeConfig()
	var out []byte
	switch c.OutputFormat {
	case "", "markdown", "md":
		out = []byte(markdown())
	case "yaml", "yml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		out = b
	default:
		return fmt.Errorf("unsupported format: %s (use markdown|yaml)", c.OutputFormat)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("✓ Wrote report to %s\n", outputPath)
		return nil
	}
	fmt.Print(string(out))
	return nil
}
