package greet

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/ci-demo/internal/config"
	"github.com/leefowlercu/ci-demo/internal/demo"
	"github.com/leefowlercu/ci-demo/internal/metrics"
	"github.com/leefowlercu/ci-demo/internal/styles"
)

// GreetCmd prints a greeting for a name.
var GreetCmd = &cobra.Command{
	Use:   "greet <name>",
	Short: "Print a greeting for a name",
	Long: "Print a greeting for a name.\n\n" +
		"The name is used verbatim, whitespace included. An empty name is " +
		"rejected with an invalid argument error.",
	Example: `  # Greet someone
  cidemo greet John

  # Names with spaces must be quoted
  cidemo greet "Ada Lovelace"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateGreet,
	RunE:    runGreet,
}

func validateGreet(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return nil
}

func runGreet(cmd *cobra.Command, args []string) error {
	greeting, err := demo.Greet(args[0])
	metrics.Default.Observe("greet", err)
	if err != nil {
		slog.Debug("greeting rejected", "error", err)
		return err
	}

	return styles.NewPrinter(cmd.OutOrStdout(), config.GetBool("output.color")).Result(greeting)
}
