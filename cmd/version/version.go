package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/ci-demo/internal/version"
)

var versionShort bool

// VersionCmd displays version and build information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build information",
	Long: "Display version and build information.\n\n" +
		"Shows the semantic version, git commit hash, and build date of the " +
		"current cidemo binary. Use --short to print the version alone, which " +
		"is convenient for tagging pipeline artifacts.",
	Example: `  # Display version information
  cidemo version

  # Print only the version
  cidemo version --short`,
	Args:    cobra.NoArgs,
	PreRunE: validateVersion,
	RunE:    runVersion,
}

func init() {
	VersionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the semantic version")
}

func validateVersion(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version())
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	return nil
}
