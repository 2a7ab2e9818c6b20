package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/KaramelBytes/dataloom-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or persist DataLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (defaults + file + env)",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := yaml.Marshal(activeConfig())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Print(string(b))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Long: `Writes the currently effective configuration (after defaults, config
file and DATALOOM_* environment overrides) back to the config file, so
thresholds can be edited in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfgpkg.Save(activeConfig(), cfgFile); err != nil {
			return err
		}
		dest := cfgFile
		if dest == "" {
			dest = "~/.dataloom/config.yaml"
		}
		fmt.Printf("✓ Wrote config to %s\n", dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
