package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/store/dataset"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// GlobalOptions hold the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
	// LogOutput receives structured logs. Defaults to the command's stderr.
	LogOutput io.Writer
}

// Dependencies are the collaborators commands build controllers from.
type Dependencies struct {
	Loaders dataset.Registry
	OpenDB  func(path string) (*sql.DB, error)
}

func DefaultDependencies() Dependencies {
	return Dependencies{
		Loaders: dataset.DefaultRegistry(),
		OpenDB: func(path string) (*sql.DB, error) {
			return duckdb.NewDB(duckdb.Settings{DbPath: path})
		},
	}
}

// loaders returns the dataset registry extended with the configured
// extension aliases.
func (d Dependencies) loaders(cfg *config.Settings) (dataset.Registry, error) {
	registry := d.Loaders
	if registry == nil {
		registry = dataset.DefaultRegistry()
	}
	if err := dataset.RegisterAliases(registry, cfg.Formats); err != nil {
		return nil, err
	}
	return registry, nil
}

// Bind registers the persistent flags on the root command.
func (g *GlobalOptions) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Path to a YAML, TOML or JSON settings file")
	cmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", zerolog.LevelInfoValue, "Log level (trace, debug, info, warn, error)")
}

// Context returns the command context carrying a configured logger.
func (g *GlobalOptions) Context(cmd *cobra.Command) (context.Context, error) {
	level := zerolog.InfoLevel
	if g.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(g.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", g.LogLevel, err)
		}
		level = parsed
	}

	out := g.LogOutput
	if out == nil {
		out = cmd.ErrOrStderr()
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithContext(ctx), nil
}

// Settings loads the settings file, if any, over the defaults.
func (g *GlobalOptions) Settings() (*config.Settings, error) {
	return config.Load(g.ConfigPath)
}

// sourceFlags are the input flags shared by report and summary.
type sourceFlags struct {
	input     string
	delimiter string
	sheet     string
}

func (f *sourceFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.input, "input", config.DefaultInput, "Path to the input dataset (.csv, .tsv, .txt or .xlsx)")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", `Field delimiter for delimited files ("tab" for tab)`)
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet to read from an .xlsx input")
}

// apply overrides settings with the flags set on the command line.
func (f *sourceFlags) apply(cmd *cobra.Command, cfg *config.Settings) {
	if cmd.Flags().Changed("input") {
		cfg.Input = f.input
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = f.delimiter
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet = f.sheet
	}
}
