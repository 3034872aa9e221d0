// Package config provides CLI commands for chartscii configuration management.
// Includes: config show, config path, config set, config keys
package config

import (
	"github.com/spf13/cobra"
)

// Register adds all configuration commands to the root command.
// This function is called from the root CLI package during initialization.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(configCmd)
}
