// chartscii - Terminal bar charts from ad-hoc numeric input
// Source: https://github.com/chartscii/chartscii-go

// Package cli provides the Cobra-based command surface for chartscii: the root
// chart command, data inspection, configuration management and version
// information.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chartscii/chartscii-go/internal/cli/config"
	"github.com/chartscii/chartscii-go/internal/cli/shared"
	"github.com/chartscii/chartscii-go/internal/cli/util"
	cfgpkg "github.com/chartscii/chartscii-go/internal/config"
	clierrors "github.com/chartscii/chartscii-go/internal/errors"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupCharts        = shared.GroupCharts
	GroupConfiguration = shared.GroupConfiguration
	GroupInfo          = shared.GroupInfo
)

var rootCmd = &cobra.Command{
	Use:   "chartscii [data...]",
	Short: "Terminal bar charts from ad-hoc numeric input",
	Long: `chartscii draws bar charts in the terminal.

Data can be passed as arguments, read from a file or piped on stdin. JSON
arrays, CSV, plain text and du-style size listings are detected automatically.

Source: https://github.com/chartscii/chartscii-go`,
	Example: `  # Chart a few numbers
  chartscii 1 2 3 4 5

  # Labelled values in object notation
  chartscii "label: 'cpu', value: 70" "label: 'mem', value: 40"

  # Chart a JSON file
  chartscii data.json --percentage

  # Disk usage, biggest first
  du -sh * | chartscii --reverse

  # Vertical chart sized to the terminal
  seq 1 10 | chartscii -e vertical -w auto -h 15`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
	RunE:              runChart,
}

// Execute runs the root command and reports any failure on stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !shared.IsExitError(err) {
		if errors.Is(err, context.Canceled) {
			err = clierrors.NewRuntimeError("interrupted")
		}
		clierrors.FprintError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// setupOutput applies --no-color and installs the stderr logger.
func setupOutput(cmd *cobra.Command, _ []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		color.NoColor = true
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), debug))
	return nil
}

// addGlobalFlags defines the persistent flags shared by every command.
func addGlobalFlags(cmd *cobra.Command) {
	// -h is --height, so help moves to -?
	cmd.Flags().BoolP("help", "?", false, "Help for chartscii")

	cmd.PersistentFlags().String("config", cfgpkg.ProjectConfigFile, "Path to project config file")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	cmd.PersistentFlags().Bool("progress", true, "Show a spinner while waiting for stdin")
}

func init() {
	// Define command groups in display order
	rootCmd.AddGroup(&cobra.Group{ID: GroupCharts, Title: "Charts:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInfo, Title: "Info:"})

	// Assign built-in help and completion to the info group
	rootCmd.SetHelpCommandGroupID(GroupInfo)
	rootCmd.SetCompletionCommandGroupID(GroupInfo)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})

	addGlobalFlags(rootCmd)
	addChartFlags(rootCmd)

	// Register commands from subpackages
	config.Register(rootCmd)
	util.Register(rootCmd)
	rootCmd.AddCommand(inspectCmd)
}
