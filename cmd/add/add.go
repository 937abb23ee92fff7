package add

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/ci-demo/internal/cmdutil"
	"github.com/leefowlercu/ci-demo/internal/config"
	"github.com/leefowlercu/ci-demo/internal/metrics"
	"github.com/leefowlercu/ci-demo/internal/styles"
)

// Parsed operands
var (
	addA cmdutil.Operand
	addB cmdutil.Operand
)

// AddCmd prints the sum of two numbers.
var AddCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Print the sum of two numbers",
	Long: "Print the sum of two numbers.\n\n" +
		"Integer operands are added exactly, with no size limit. If either operand " +
		"has a fractional part or exponent, both are added as floating point " +
		"numbers. NaN and Inf are rejected.",
	Example: `  # Add two integers
  cidemo add 2 3

  # Negative operands follow --
  cidemo add -- -1 1`,
	Args:    cobra.ExactArgs(2),
	PreRunE: validateAdd,
	RunE:    runAdd,
}

func validateAdd(cmd *cobra.Command, args []string) error {
	var err error
	addA, addB, err = cmdutil.ParseOperands(args[0], args[1])
	if err != nil {
		metrics.Default.Observe("add", err)
		return err
	}

	cmd.SilenceUsage = true
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	sum := cmdutil.Apply(addA, addB, cmdutil.Addition)
	metrics.Default.Observe("add", nil)
	slog.Debug("operands added", "a", args[0], "b", args[1], "sum", sum)

	return styles.NewPrinter(cmd.OutOrStdout(), config.GetBool("output.color")).Result(sum)
}
