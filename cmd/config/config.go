// Package config provides the config parent command and subcommands.
package config

import (
	"github.com/spf13/cobra"

	"github.com/leefowlercu/ci-demo/cmd/config/subcommands"
)

// ConfigCmd is the parent command for all config-related subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cidemo configuration",
	Long: "Manage cidemo configuration.\n\n" +
		"The config command allows you to create, view, validate, and reset the " +
		"cidemo configuration. Configuration is stored in a YAML file located at " +
		"~/.config/cidemo/config.yaml by default.",
}

func init() {
	ConfigCmd.AddCommand(subcommands.InitCmd)
	ConfigCmd.AddCommand(subcommands.ShowCmd)
	ConfigCmd.AddCommand(subcommands.ValidateCmd)
	ConfigCmd.AddCommand(subcommands.ResetCmd)
}
