package commands

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/de-tools/sales-atlas/pkg/store/duckdb/snapshot"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	global *GlobalOptions
	deps   Dependencies

	source   sourceFlags
	output   string
	format   string
	database string
}

// NewReportCmd builds the report command. The root command reuses it as
// its default action.
func NewReportCmd(global *GlobalOptions, deps Dependencies) *cobra.Command {
	rc := &ReportCmd{global: global, deps: deps}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the discount and sales report for a dataset",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	rc.source.bind(cmd)
	cmd.Flags().StringVar(&rc.output, "output", config.DefaultOutput, "Path of the report file to write")
	cmd.Flags().StringVar(&rc.format, "format", config.DefaultFormat, "Report format (csv, xlsx)")
	cmd.Flags().StringVar(&rc.database, "db", "", "DuckDB file receiving a snapshot of the run")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, err := rc.global.Context(cmd)
	if err != nil {
		return err
	}

	cfg, err := rc.global.Settings()
	if err != nil {
		return err
	}
	rc.source.apply(cmd, cfg)
	if cmd.Flags().Changed("output") {
		cfg.Output = rc.output
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = rc.format
	}
	if cmd.Flags().Changed("db") {
		cfg.Database = rc.database
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := export.ValidateFormat(cfg.Format); err != nil {
		return err
	}

	req, err := report.NewRequest(cfg)
	if err != nil {
		return err
	}

	loaders, err := rc.deps.loaders(cfg)
	if err != nil {
		return err
	}

	var snapshots snapshot.Store
	if cfg.Database != "" {
		db, err := rc.deps.OpenDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to open snapshot database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close snapshot database")
			}
		}()

		snapshots, err = snapshot.NewStore(db)
		if err != nil {
			return err
		}
	}

	ctrl := report.NewController(loaders, snapshots)
	if _, err := ctrl.Run(ctx, req); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", cfg.Output)
	return err
}
