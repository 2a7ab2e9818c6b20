package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
)

// Global configuration structure. The classifier thresholds live here
// because they are policy, not structure: the defaults reproduce the
// calibrated behavior, but a site may tune them per dataset.
type Global struct {
	OutputFormat   string `mapstructure:"output_format" yaml:"output_format"`
	MaxPreviewRows int    `mapstructure:"max_preview_rows" yaml:"max_preview_rows"`

	// Type inference thresholds.
	DateTimeMinRate  float64 `mapstructure:"datetime_min_rate" yaml:"datetime_min_rate"`
	BoolMinRate      float64 `mapstructure:"bool_min_rate" yaml:"bool_min_rate"`
	NumericMinRate   float64 `mapstructure:"numeric_min_rate" yaml:"numeric_min_rate"`
	NumericMinFilled float64 `mapstructure:"numeric_min_filled" yaml:"numeric_min_filled"`

	// Categorical detector.
	CatMaxDistinctRatio float64 `mapstructure:"cat_max_distinct_ratio" yaml:"cat_max_distinct_ratio"`
	CatMaxCodeRate      float64 `mapstructure:"cat_max_code_rate" yaml:"cat_max_code_rate"`
	CatMaxMedianLen     float64 `mapstructure:"cat_max_median_len" yaml:"cat_max_median_len"`
	CatMaxDistinct      int     `mapstructure:"cat_max_distinct" yaml:"cat_max_distinct"`
	CatLowDistinctRatio float64 `mapstructure:"cat_low_distinct_ratio" yaml:"cat_low_distinct_ratio"`
	CatTopCoverage      float64 `mapstructure:"cat_top_coverage" yaml:"cat_top_coverage"`
	CatTopN             int     `mapstructure:"cat_top_n" yaml:"cat_top_n"`
	CatMinSignals       int     `mapstructure:"cat_min_signals" yaml:"cat_min_signals"`

	// CSV ingestion.
	NAValues []string `mapstructure:"na_values" yaml:"na_values"`
	MaxRows  int      `mapstructure:"max_rows" yaml:"max_rows"`
}

// Thresholds converts the configured values into the classifier's
// parameter struct.
func (c *Global) Thresholds() infer.Thresholds {
	return infer.Thresholds{
		DateTimeMinRate:     c.DateTimeMinRate,
		BoolMinRate:         c.BoolMinRate,
		NumericMinRate:      c.NumericMinRate,
		NumericMinFilled:    c.NumericMinFilled,
		CatMaxDistinctRatio: c.CatMaxDistinctRatio,
		CatMaxCodeRate:      c.CatMaxCodeRate,
		CatMaxMedianLen:     c.CatMaxMedianLen,
		CatMaxDistinct:      c.CatMaxDistinct,
		CatLowDistinctRatio: c.CatLowDistinctRatio,
		CatTopCoverage:      c.CatTopCoverage,
		CatTopN:             c.CatTopN,
		CatMinSignals:       c.CatMinSignals,
	}
}

// Default returns a configuration with every value at its built-in
// default, bypassing file and env lookup.
func Default() *Global {
	def := infer.DefaultThresholds()
	return &Global{
		OutputFormat:        "markdown",
		MaxPreviewRows:      30,
		DateTimeMinRate:     def.DateTimeMinRate,
		BoolMinRate:         def.BoolMinRate,
		NumericMinRate:      def.NumericMinRate,
		NumericMinFilled:    def.NumericMinFilled,
		CatMaxDistinctRatio: def.CatMaxDistinctRatio,
		CatMaxCodeRate:      def.CatMaxCodeRate,
		CatMaxMedianLen:     def.CatMaxMedianLen,
		CatMaxDistinct:      def.CatMaxDistinct,
		CatLowDistinctRatio: def.CatLowDistinctRatio,
		CatTopCoverage:      def.CatTopCoverage,
		CatTopN:             def.CatTopN,
		CatMinSignals:       def.CatMinSignals,
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.dataloom/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataloom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATALOOM")
	v.AutomaticEnv()

	def := infer.DefaultThresholds()
	v.SetDefault("output_format", "markdown")
	v.SetDefault("max_preview_rows", 30)
	v.SetDefault("datetime_min_rate", def.DateTimeMinRate)
	v.SetDefault("bool_min_rate", def.BoolMinRate)
	v.SetDefault("numeric_min_rate", def.NumericMinRate)
	v.SetDefault("numeric_min_filled", def.NumericMinFilled)
	v.SetDefault("cat_max_distinct_ratio", def.CatMaxDistinctRatio)
	v.SetDefault("cat_max_code_rate", def.CatMaxCodeRate)
	v.SetDefault("cat_max_median_len", def.CatMaxMedianLen)
	v.SetDefault("cat_max_distinct", def.CatMaxDistinct)
	v.SetDefault("cat_low_distinct_ratio", def.CatLowDistinctRatio)
	v.SetDefault("cat_top_coverage", def.CatTopCoverage)
	v.SetDefault("cat_top_n", def.CatTopN)
	v.SetDefault("cat_min_signals", def.CatMinSignals)
	v.SetDefault("na_values", []string{})
	v.SetDefault("max_rows", 0)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataloom")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
