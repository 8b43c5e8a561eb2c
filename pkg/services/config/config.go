package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

const (
	DefaultInput  = "SampleSuperstore.csv"
	DefaultOutput = "superstore_analysis.txt"
	DefaultFormat = "csv"
)

type Settings struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format"`
	// Delimiter applies to delimited input and output. Empty keeps the
	// per-format default ("," for .csv, tab for .tsv).
	Delimiter string `mapstructure:"delimiter"`
	// Sheet selects the worksheet of an .xlsx input.
	Sheet string `mapstructure:"sheet"`
	// Database is an optional DuckDB file receiving a snapshot of each run.
	Database string         `mapstructure:"database"`
	Columns  domain.Columns `mapstructure:"columns"`
	// Formats maps extra input extensions onto built-in loaders,
	// e.g. dat: csv.
	Formats map[string]string `mapstructure:"formats"`
}

// Load reads settings from profilePath (YAML, TOML or JSON by extension)
// over the built-in defaults. An empty path yields the defaults.
func Load(profilePath string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if profilePath != "" {
		v.SetConfigFile(profilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	cols := domain.DefaultColumns()

	v.SetDefault("input", DefaultInput)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet", "")
	v.SetDefault("database", "")
	v.SetDefault("columns.category", cols.Category)
	v.SetDefault("columns.ship_mode", cols.ShipMode)
	v.SetDefault("columns.segment", cols.Segment)
	v.SetDefault("columns.sales", cols.Sales)
	v.SetDefault("columns.discount", cols.Discount)
}

func (s *Settings) Validate() error {
	if s.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if s.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if _, err := s.DelimiterRune(); err != nil {
		return err
	}
	for _, name := range s.Columns.Required() {
		if name == "" {
			return fmt.Errorf("column names cannot be empty: %s", s.Columns)
		}
	}
	return nil
}

// DelimiterRune returns the configured delimiter, or 0 when unset.
// "tab" and "\t" both select a tab.
func (s *Settings) DelimiterRune() (rune, error) {
	switch s.Delimiter {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s.Delimiter)
	if size != len(s.Delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character other than quote or newline", s.Delimiter)
	}
	return r, nil
}
