package subcommands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leefowlercu/ci-demo/internal/config"
)

var (
	showRaw    bool
	showFormat string
)

// ShowCmd displays the current configuration.
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Long: "Display the current configuration.\n\n" +
		"Shows the effective configuration with defaults and environment " +
		"overrides applied. Use --raw to show the config file as written, " +
		"and --format to choose between YAML and TOML rendering.",
	Example: `  # Show effective configuration
  cidemo config show

  # Render as TOML
  cidemo config show --format toml

  # Show only explicitly set values
  cidemo config show --raw`,
	Args:    cobra.NoArgs,
	PreRunE: validateShow,
	RunE:    runShow,
}

func init() {
	ShowCmd.Flags().BoolVar(&showRaw, "raw", false, "Show the config file contents instead of effective values")
	ShowCmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "Output format (yaml, toml)")
}

func validateShow(cmd *cobra.Command, args []string) error {
	if showFormat != "yaml" && showFormat != "toml" {
		return fmt.Errorf("invalid format %q; must be one of: yaml, toml", showFormat)
	}

	cmd.SilenceUsage = true
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if showRaw {
		return showRawConfig(cmd)
	}
	return showEffectiveConfig(cmd)
}

func showRawConfig(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	configPath := config.GetConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(out, "# No configuration file found")
			fmt.Fprintf(out, "# Default location: %s\n", configPath)
			return nil
		}
		return fmt.Errorf("failed to read config file; %w", err)
	}

	fmt.Fprintf(out, "# Configuration file: %s\n", configPath)
	fmt.Fprintln(out, string(data))
	return nil
}

func showEffectiveConfig(cmd *cobra.Command) error {
	data, err := render(config.GetAllSettings(), showFormat)
	if err != nil {
		return fmt.Errorf("failed to format configuration; %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "# Effective configuration (with defaults)")
	fmt.Fprint(out, string(data))
	return nil
}

func render(settings map[string]any, format string) ([]byte, error) {
	if format == "toml" {
		return toml.Marshal(settings)
	}
	return yaml.Marshal(settings)
}
