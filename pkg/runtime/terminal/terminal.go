package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/boca-banker/boca-banker/pkg/runtime/terminal/commands"
	"github.com/boca-banker/boca-banker/pkg/runtime/terminal/export"
	"github.com/boca-banker/boca-banker/pkg/services/study"
)

// CLI represents the command-line interface
type CLI struct {
	calculator study.Calculator
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Calculator study.Calculator
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Calculator == nil {
		opts.Calculator = study.NewCalculator()
	}

	cli := &CLI{
		calculator: opts.Calculator,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boca",
		Short: "Cost segregation study tool",
	}

	cmd.AddCommand(commands.NewStudyCmd(cli.calculator, cli.reporter))
	cmd.AddCommand(commands.NewAllocationCmd(cli.reporter))
	cmd.AddCommand(commands.NewLeadsCmd(cli.reporter))

	return cmd
}
