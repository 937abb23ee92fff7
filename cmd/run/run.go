package run

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/ci-demo/internal/config"
	"github.com/leefowlercu/ci-demo/internal/demo"
	"github.com/leefowlercu/ci-demo/internal/metrics"
	"github.com/leefowlercu/ci-demo/internal/styles"
)

// Banner is the first line of the demonstration output.
const Banner = "🚀 Jenkins Demo Go App"

// Fixed demonstration inputs.
const (
	greetName = "Jenkins"
	addA      = 2
	addB      = 3
	mulA      = 4
	mulB      = 5
)

// RunCmd prints the demonstration sequence. The root command runs it when no
// subcommand is given.
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demonstration sequence",
	Long: "Run the demonstration sequence.\n\n" +
		"Prints a banner line, a greeting for \"Jenkins\", and the results of " +
		"2 + 3 and 4 * 5, one per line.",
	Example: `  # Run the demonstration
  cidemo run

  # Same as running with no subcommand
  cidemo`,
	Args:    cobra.NoArgs,
	PreRunE: validateRun,
	RunE:    runRun,
}

func validateRun(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return nil
}

func runRun(cmd *cobra.Command, args []string) error {
	out := styles.NewPrinter(cmd.OutOrStdout(), config.GetBool("output.color"))

	if err := out.Title(Banner); err != nil {
		return err
	}

	greeting, err := demo.Greet(greetName)
	metrics.Default.Observe("greet", err)
	if err != nil {
		return fmt.Errorf("failed to format greeting; %w", err)
	}
	slog.Debug("greeting formatted", "name", greetName)

	metrics.Default.Observe("add", nil)
	metrics.Default.Observe("multiply", nil)

	lines := []string{
		greeting,
		fmt.Sprintf("%d + %d = %d", addA, addB, demo.Add(addA, addB)),
		fmt.Sprintf("%d * %d = %d", mulA, mulB, demo.Multiply(mulA, mulB)),
	}
	for _, line := range lines {
		if err := out.Result(line); err != nil {
			return err
		}
	}

	return nil
}
