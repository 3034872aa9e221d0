package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/chartscii/chartscii-go/internal/config"
	clierrors "github.com/chartscii/chartscii-go/internal/errors"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in user or project config.

By default, sets the value in the user-level config (~/.config/chartscii/config.json).
Use --project to set it in the project-level config (.chartscii.json, or the --config path).

The value type is inferred and validated against the expected type.`,
	Example: `  # Draw vertical charts by default (user config)
  chartscii config set orientation vertical

  # Size charts to the terminal
  chartscii config set width auto

  # Use a different bottom border in this project
  chartscii config set structure.x - --project`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all available configuration keys",
	Long:  `Display all valid configuration keys with their types and descriptions.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)

	configSetCmd.Flags().Bool("user", false, "Set in user-level config (default)")
	configSetCmd.Flags().Bool("project", false, "Set in project-level config")
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	out := cmd.OutOrStdout()

	filePath, scope, err := resolveConfigPath(cmd)
	if err != nil {
		return err
	}

	if err := cfgpkg.SetConfigValue(filePath, key, value); err != nil {
		var unknown cfgpkg.ErrUnknownKey
		if errors.As(err, &unknown) {
			return formatUnknownKeyError(key)
		}
		return clierrors.WrapWithMessage(err, clierrors.Configuration,
			fmt.Sprintf("cannot set %s", key),
			"Run chartscii config keys to see each key's type")
	}

	fmt.Fprintf(out, "Set %s = %s in %s config (%s)\n", key, value, scope, filePath)
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Available configuration keys:")
	fmt.Fprintln(out)

	for _, key := range cfgpkg.SortedKeys() {
		schema := cfgpkg.KnownKeys[key]
		typeInfo := schema.Type.String()
		if schema.Type == cfgpkg.TypeEnum {
			typeInfo = fmt.Sprintf("enum (%s)", strings.Join(schema.AllowedValues, ", "))
		}
		fmt.Fprintf(out, "  %-30s %s\n", key, typeInfo)
		fmt.Fprintf(out, "    %s\n", schema.Description)
		fmt.Fprintln(out)
	}

	return nil
}

func resolveConfigPath(cmd *cobra.Command) (filePath, scope string, err error) {
	useUser, _ := cmd.Flags().GetBool("user")
	useProject, _ := cmd.Flags().GetBool("project")

	if useUser && useProject {
		return "", "", clierrors.InvalidFlagCombination("--user and --project", "they are mutually exclusive")
	}

	if useProject {
		return projectConfigPath(cmd), "project", nil
	}

	userPath, err := cfgpkg.UserConfigPath()
	if err != nil {
		return "", "", fmt.Errorf("getting user config path: %w", err)
	}
	return userPath, "user", nil
}

func formatUnknownKeyError(key string) error {
	return clierrors.NewConfigError(
		fmt.Sprintf("unknown configuration key: %q", key),
		"Valid keys: "+strings.Join(cfgpkg.SortedKeys(), ", "),
	)
}
