package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chartscii/chartscii-go/internal/chart"
	"github.com/chartscii/chartscii-go/internal/cli/shared"
	"github.com/chartscii/chartscii-go/internal/config"
	clierrors "github.com/chartscii/chartscii-go/internal/errors"
	"github.com/chartscii/chartscii-go/internal/layout"
)

// addChartFlags defines the flags that shape the chart. Their defaults
// mirror the built-in configuration; only flags the user sets override it.
func addChartFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	structure := chart.DefaultStructure()

	f.StringP("file", "f", "", "Read data from a file")
	f.String("format", "auto", "Input format: auto, json, csv or text")
	f.StringP("title", "t", "", "Chart title")
	f.BoolP("labels", "l", true, "Show labels")
	f.BoolP("color-labels", "d", true, "Colour labels like their bars")
	f.BoolP("percentage", "o", false, "Show each bar's share of the total")
	f.StringP("orientation", "e", string(layout.Horizontal), "Bar direction: horizontal or vertical")
	f.StringP("width", "w", "80", "Chart width in columns, or auto")
	f.StringP("height", "h", "20", "Vertical chart height in rows, or auto")
	f.IntP("bar-size", "b", 0, "Bar thickness (automatic when unset)")
	f.IntP("padding", "p", 0, "Space between bars (automatic when unset)")
	f.StringP("color", "c", "", "Bar colour: a name, #rrggbb, an ANSI index or auto")
	f.StringP("theme", "k", "", "Colour theme")
	f.StringP("char", "z", layout.DefaultChar, "Bar glyph")
	f.StringP("fill", "g", "", "Glyph for the empty part of the bar area")
	f.BoolP("sort", "s", true, "Sort bars by value")
	f.BoolP("reverse", "r", false, "Reverse bar order")
	f.BoolP("naked", "n", false, "Hide axis and border")
	f.StringP("structure-x", "x", structure.X, "Bottom border glyph")
	f.StringP("structure-y", "y", structure.Y, "Axis glyph on bar rows")
	f.StringP("structure-axis", "a", structure.Axis, "Axis glyph")
	f.StringP("structure-bottom-left", "q", structure.BottomLeft, "Bottom-left corner glyph")
	f.Bool("value-labels", false, "Print values after bars")
	f.String("value-labels-prefix", "", "Text before each value label")
	f.Int("value-labels-floating-point", layout.DefaultFloatingPoint, "Decimal places in value labels")
	f.StringSlice("stack-colors", nil, "Colours for stacked segments")
	f.Float64P("max-value", "m", 0, "Value of a full-length bar (largest value when unset)")

	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return chart.ThemeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("orientation", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(layout.Horizontal), string(layout.Vertical)}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	in, err := loadInput(cmd.Context(), cmd, cfg, args)
	if errors.Is(err, errNoInput) {
		return usageError(cmd)
	}
	if err != nil {
		return err
	}
	if len(in.records) == 0 {
		return clierrors.NoChartableData()
	}

	out, err := renderChart(cfg, in, color.NoColor)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// renderChart sizes the bar area to the configured width and draws the chart.
func renderChart(cfg *config.Configuration, in input, noColor bool) (string, error) {
	width, err := config.ResolveDimension(cfg.Width, shared.GetTerminalWidth())
	if err != nil {
		return "", clierrors.InvalidFlagValue("width", cfg.Width, "a positive integer or auto")
	}
	height, err := config.ResolveDimension(cfg.Height, shared.GetTerminalHeight())
	if err != nil {
		return "", clierrors.InvalidFlagValue("height", cfg.Height, "a positive integer or auto")
	}

	area := layout.BarAreaWidth(cfg.Budget(width), in.records)
	slog.Debug("computed layout",
		"orientation", cfg.Orientation,
		"width", width,
		"height", height,
		"bar_area", area)

	out, err := chart.New(in.records, cfg.ChartOptions(area, height, noColor)).Render()
	if err != nil {
		return "", clierrors.RenderFailed(err)
	}
	return out, nil
}
