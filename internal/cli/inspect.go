package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/chartscii/chartscii-go/internal/cli/shared"
	"github.com/chartscii/chartscii-go/internal/config"
	clierrors "github.com/chartscii/chartscii-go/internal/errors"
	"github.com/chartscii/chartscii-go/internal/layout"
	"github.com/chartscii/chartscii-go/internal/record"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [data...]",
	Short: "Show how input is parsed",
	Long: `Parse input the way the chart command does and print the records as a table.

Shows the input source, the detected format, every record with its kind, label,
value and segments, and the bar area the chart would get.`,
	Example: `  # See how a file is read
  chartscii inspect data.csv

  # du output with sizes shown in bytes units
  du -sh * | chartscii inspect --bytes`,
	Args: cobra.ArbitraryArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.GroupID = shared.GroupCharts
	addInspectFlags(inspectCmd)
}

func addInspectFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read data from a file")
	cmd.Flags().String("format", "auto", "Input format: auto, json, csv or text")
	cmd.Flags().Bool("bytes", false, "Show values as byte sizes")
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	asBytes, _ := cmd.Flags().GetBool("bytes")
	out := cmd.OutOrStdout()

	printSummary(out, in)
	if len(in.records) == 0 {
		fmt.Fprintln(out, "No chartable records.")
		return nil
	}

	fmt.Fprintln(out, recordTable(in.records, asBytes))
	return printLayout(out, cfg, in.records)
}

func printSummary(out io.Writer, in input) {
	source := string(in.source.Origin)
	if in.source.Path != "" {
		source += " " + in.source.Path
	}
	fmt.Fprintf(out, "Source:  %s\n", source)
	fmt.Fprintf(out, "Format:  %s\n", in.format)
	fmt.Fprintf(out, "Records: %d\n", len(in.records))
	fmt.Fprintln(out)
}

// recordTable renders one row per record with a footer holding the total.
func recordTable(records []record.Record, asBytes bool) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Kind", "Label", "Value", "Segments", "Color"})

	var total float64
	for i, r := range records {
		total += r.Total()
		tbl.AppendRow(table.Row{
			i + 1,
			r.Kind.String(),
			r.Label,
			formatValue(r.Total(), asBytes),
			formatSegments(r.Segments, asBytes),
			r.Color,
		})
	}

	tbl.AppendFooter(table.Row{"", "", "Total", formatValue(total, asBytes), "", ""})
	return tbl.Render()
}

func formatValue(v float64, asBytes bool) string {
	if asBytes && v >= 0 {
		return humanize.IBytes(uint64(v))
	}
	return humanize.Commaf(v)
}

func formatSegments(segs []float64, asBytes bool) string {
	if len(segs) == 0 {
		return ""
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = formatValue(s, asBytes)
	}
	return strings.Join(parts, " | ")
}

// printLayout reports the bar area the configured width leaves.
func printLayout(out io.Writer, cfg *config.Configuration, records []record.Record) error {
	width, err := config.ResolveDimension(cfg.Width, shared.GetTerminalWidth())
	if err != nil {
		return clierrors.InvalidFlagValue("width", cfg.Width, "a positive integer or auto")
	}
	budget := cfg.Budget(width)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Layout:  %s, width %d, bar area %d\n",
		cfg.Orientation, width, layout.BarAreaWidth(budget, records))
	if budget.Labels {
		fmt.Fprintf(out, "Labels:  %d columns\n", layout.MaxLabelWidth(records, budget.Percentage))
	}
	return nil
}
