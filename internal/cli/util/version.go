package util

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/chartscii/chartscii-go/internal/cli/shared"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/chartscii/chartscii-go"

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

var versionPlain bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for chartscii",
	Example: `  # Show version info
  chartscii version

  # Plain output (for scripts)
  chartscii version --plain`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionPlain {
			printPlainVersion(out)
		} else {
			printPrettyVersion(out, shared.GetTerminalWidth())
		}
	},
}

func init() {
	versionCmd.GroupID = shared.GroupInfo
	versionCmd.Flags().BoolVar(&versionPlain, "plain", false, "Plain output without formatting")
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "chartscii %s\n", Version)
	fmt.Fprintf(out, "commit: %s\n", Commit)
	fmt.Fprintf(out, "built: %s\n", BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints the logo and a box of version details
func printPrettyVersion(out io.Writer, termWidth int) {
	shared.PrintBanner(out, termWidth)
	shared.PrintBox(out, []shared.BoxRow{
		{Label: "Version", Value: Version},
		{Label: "Commit", Value: truncateCommit(Commit)},
		{Label: "Built", Value: BuildDate},
		{Label: "Go", Value: runtime.Version()},
		{Label: "Platform", Value: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
		{Label: "Source", Value: SourceURL},
	}, termWidth)
	fmt.Fprintln(out)
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
