package commands

import (
	"encoding/json"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	global   *GlobalOptions
	deps     Dependencies
	reporter export.Handler

	source sourceFlags
	asJSON bool
}

func NewSummaryCmd(global *GlobalOptions, deps Dependencies, reporter export.Handler) *cobra.Command {
	sc := &SummaryCmd{global: global, deps: deps, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the report to the console without writing a file",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	sc.source.bind(cmd)
	cmd.Flags().BoolVar(&sc.asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	ctx, err := sc.global.Context(cmd)
	if err != nil {
		return err
	}

	cfg, err := sc.global.Settings()
	if err != nil {
		return err
	}
	sc.source.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	req, err := report.NewRequest(cfg)
	if err != nil {
		return err
	}

	loaders, err := sc.deps.loaders(cfg)
	if err != nil {
		return err
	}

	result, err := report.NewController(loaders, nil).Build(ctx, req)
	if err != nil {
		return err
	}

	if sc.asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(adapters.MapReportDomainToApi(result.Report))
	}
	return sc.reporter.Handle(result.Report)
}
