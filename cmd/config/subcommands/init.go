package subcommands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leefowlercu/ci-demo/internal/config"
)

var initForce bool

// InitCmd writes a configuration file populated with defaults.
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with default values",
	Long: "Create a configuration file with default values.\n\n" +
		"Writes ~/.config/cidemo/config.yaml containing every setting at its " +
		"default. An existing file is left untouched unless --force is given.",
	Example: `  # Create the default configuration
  cidemo config init

  # Overwrite an existing configuration
  cidemo config init --force`,
	Args:    cobra.NoArgs,
	PreRunE: validateInit,
	RunE:    runInit,
}

func init() {
	InitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
}

func validateInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configPath := config.DefaultConfigPath()

	if config.ConfigExistsAt(configPath) && !initForce {
		return fmt.Errorf("configuration file already exists at %s; use --force to overwrite", configPath)
	}

	cfg := config.NewDefaultConfig()
	if err := config.Write(&cfg, configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Configuration written to %s\n", configPath)
	return nil
}
