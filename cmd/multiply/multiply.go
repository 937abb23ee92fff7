package multiply

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
	mulA cmdutil.Operand
	mulB cmdutil.Operand
)

// MultiplyCmd prints the product of two numbers.
var MultiplyCmd = &cobra.Command{
	Use:   "multiply <a> <b>",
	Short: "Print the product of two numbers",
	Long: "Print the product of two numbers.\n\n" +
		"Integer operands are multiplied exactly, with no size limit. If either " +
		"operand has a fractional part or exponent, both are multiplied as " +
		"floating point numbers. NaN and Inf are rejected.",
	Example: `  # Multiply two integers
  cidemo multiply 4 5

  # Negative operands follow --
  cidemo multiply -- -2 3`,
	Aliases: []string{"mul"},
	Args:    cobra.ExactArgs(2),
	PreRunE: validateMultiply,
	RunE:    runMultiply,
}

func validateMultiply(cmd *cobra.Command, args []string) error {
	var err error
	mulA, mulB, err = cmdutil.ParseOperands(args[0], args[1])
	if err != nil {
		metrics.Default.Observe("multiply", err)
		return err
	}

	cmd.SilenceUsage = true
	return nil
}

func runMultiply(cmd *cobra.Command, args []string) error {
	product := cmdutil.Apply(mulA, mulB, cmdutil.Multiplication)
	metrics.Default.Observe("multiply", nil)
	slog.Debug("operands multiplied", "a", args[0], "b", args[1], "product", product)

	return styles.NewPrinter(cmd.OutOrStdout(), config.GetBool("output.color")).Result(product)
}
