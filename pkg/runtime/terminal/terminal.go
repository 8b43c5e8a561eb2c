package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	global   *commands.GlobalOptions
	deps     commands.Dependencies
	reporter *Reporter
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// LogOutput receives structured logs, stderr when nil.
	LogOutput io.Writer
	// Dependencies default to commands.DefaultDependencies.
	Dependencies *commands.Dependencies
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	deps := commands.DefaultDependencies()
	if opts.Dependencies != nil {
		deps = *opts.Dependencies
	}

	cli := &CLI{
		global:   &commands.GlobalOptions{LogOutput: opts.LogOutput},
		deps:     deps,
		reporter: NewReporter(opts.Output, DefaultTableConfig()),
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the CLI with ctx as the base of every command context.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:], mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	// Running the root command without a subcommand writes the report.
	cmd := commands.NewReportCmd(cli.global, cli.deps)
	cmd.Use = "superstore"
	cmd.Short = "Superstore sales report generator"
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(cli.output)

	cli.global.Bind(cmd)

	cmd.AddCommand(commands.NewReportCmd(cli.global, cli.deps))
	cmd.AddCommand(commands.NewSummaryCmd(cli.global, cli.deps, cli.reporter))

	return cmd
}
