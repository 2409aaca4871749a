// cmd/beams/cmd_config.go
package main

import (
	"go-beams/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	Long: `Prints the settings after defaults, the config file and BEAMS_*
environment overrides are applied. The model API key is never printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Encode(cmd.OutOrStdout(), settings)
	},
}
