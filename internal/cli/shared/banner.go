package shared

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Logo is the banner drawn by `chartscii version`, a tiny bar chart.
var Logo = []string{
	"█▄▄ ▄▀█ █▀█ █▀",
	"█▄█ █▀█ █▀▄ ▄█",
}

// Tagline is the project tagline.
const Tagline = "Terminal bar charts from ad-hoc numeric input"

// Fallback dimensions when the output is not a terminal.
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

// Box drawing characters
const (
	BoxTopLeft     = "╭"
	BoxTopRight    = "╮"
	BoxBottomLeft  = "╰"
	BoxBottomRight = "╯"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return DefaultTerminalWidth
}

// GetTerminalHeight returns the terminal height, defaulting to 24 if unavailable.
func GetTerminalHeight() int {
	if _, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && height > 0 {
		return height
	}
	return DefaultTerminalHeight
}

// CenterText centers text within a given width.
func CenterText(text string, width int) string {
	textLen := runewidth.StringWidth(text)
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}

// PrintBanner prints the coloured logo and tagline centred in width columns.
func PrintBanner(out io.Writer, width int) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintln(out)
	for _, line := range Logo {
		fmt.Fprintln(out, cyan(CenterText(line, width)))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, dim(CenterText(Tagline, width)))
	fmt.Fprintln(out)
}

// BoxRow is one label/value line inside a box.
type BoxRow struct {
	Label string
	Value string
}

// PrintBox draws rows inside a rounded box centred in termWidth columns.
func PrintBox(out io.Writer, rows []BoxRow, termWidth int) {
	yellow := color.New(color.FgYellow).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()

	boxWidth := 44
	if termWidth < 50 {
		boxWidth = termWidth - 6
	}
	contentWidth := boxWidth - 4

	pad := strings.Repeat(" ", max(0, (termWidth-boxWidth)/2))
	blank := pad + BoxVertical + strings.Repeat(" ", max(0, boxWidth-2)) + BoxVertical

	fmt.Fprintln(out, pad+BoxTopLeft+strings.Repeat(BoxHorizontal, max(0, boxWidth-2))+BoxTopRight)
	fmt.Fprintln(out, blank)
	for _, row := range rows {
		line := fmt.Sprintf("  %s    %s", yellow(fmt.Sprintf("%12s", row.Label)), white(row.Value))
		lineLen := 12 + 4 + runewidth.StringWidth(row.Value) + 2
		if lineLen < contentWidth {
			line += strings.Repeat(" ", contentWidth-lineLen)
		}
		fmt.Fprintln(out, pad+BoxVertical+" "+line+" "+BoxVertical)
	}
	fmt.Fprintln(out, blank)
	fmt.Fprintln(out, pad+BoxBottomLeft+strings.Repeat(BoxHorizontal, max(0, boxWidth-2))+BoxBottomRight)
}
