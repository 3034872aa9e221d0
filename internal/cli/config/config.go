package config

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chartscii/chartscii-go/internal/cli/shared"
	cfgpkg "github.com/chartscii/chartscii-go/internal/config"
	clierrors "github.com/chartscii/chartscii-go/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chartscii configuration",
	Long: `Manage chartscii configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (CHARTSCII_*)
  3. Project config (.chartscii.json, or the --config path)
  4. User config (~/.config/chartscii/config.json)
  5. Built-in defaults`,
	Example: `  # Show current configuration
  chartscii config show

  # Show where configuration is read from
  chartscii config path

  # Make every chart vertical
  chartscii config set orientation vertical`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current effective configuration",
	Long: `Display the current effective configuration values as YAML.

Shows the merged result of defaults, user config, project config, and
environment variables.`,
	Example: `  # Show configuration
  chartscii config show

  # Show configuration from another project file
  chartscii config show --config charts.json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file locations",
	Long:  "Display the user and project configuration file paths and whether each exists.",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.GroupID = shared.GroupConfiguration

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// projectConfigPath returns the --config value when the flag is present.
func projectConfigPath(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		return path
	}
	return cfgpkg.ProjectConfigPath()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	projectPath := projectConfigPath(cmd)

	cfg, err := cfgpkg.Load(projectPath)
	if err != nil {
		return clierrors.ConfigParseError(projectPath, err)
	}

	userPath, _ := cfgpkg.UserConfigPath()

	fmt.Fprintf(out, "# Configuration Sources\n")
	fmt.Fprintf(out, "# User config:    %s\n", userPath)
	fmt.Fprintf(out, "# Project config: %s\n", projectPath)
	fmt.Fprintf(out, "\n")

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	fmt.Fprint(out, string(data))

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	userPath, err := cfgpkg.UserConfigPath()
	if err != nil {
		return fmt.Errorf("getting user config path: %w", err)
	}

	printPath(out, "User config", userPath)
	printPath(out, "Project config", projectConfigPath(cmd))
	return nil
}

func printPath(out io.Writer, label, path string) {
	status := "not found"
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		status = "exists"
	}
	fmt.Fprintf(out, "%-15s %s (%s)\n", label+":", path, status)
}
