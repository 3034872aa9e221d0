package config

import (
	"fmt"
	"strconv"

	"github.com/chartscii/chartscii-go/internal/chart"
	"github.com/chartscii/chartscii-go/internal/layout"
	"github.com/chartscii/chartscii-go/internal/parser"
)

// ResolveDimension turns a width or height setting into columns or rows.
// "auto" yields fallback, normally the terminal's size.
func ResolveDimension(value string, fallback int) (int, error) {
	if value == AutoDimension {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid dimension %q: expected a positive integer or %s", value, AutoDimension)
	}
	return n, nil
}

// InputFormat returns the configured input format.
func (c *Configuration) InputFormat() (parser.Format, error) {
	return parser.ParseFormat(c.Format)
}

// Budget describes the chart's target width and the toggles that decide
// how much of it the bars get.
func (c *Configuration) Budget(width int) layout.Budget {
	return layout.Budget{
		Width:                    width,
		Orientation:              layout.Orientation(c.Orientation),
		Labels:                   c.Labels,
		Percentage:               c.Percentage,
		ValueLabels:              c.ValueLabels,
		ValueLabelsFloatingPoint: c.ValueLabelsFloatingPoint,
		Naked:                    c.Naked,
		BarSize:                  c.BarSize,
		Padding:                  c.Padding,
		Char:                     c.Char,
	}
}

// ChartOptions builds renderer options for a bar area barArea columns wide.
func (c *Configuration) ChartOptions(barArea, height int, noColor bool) chart.Options {
	return chart.Options{
		Title:                    c.Title,
		Width:                    barArea,
		Height:                   height,
		Orientation:              layout.Orientation(c.Orientation),
		BarSize:                  c.BarSize,
		Padding:                  c.Padding,
		Labels:                   c.Labels,
		ColorLabels:              c.ColorLabels,
		Percentage:               c.Percentage,
		ValueLabels:              c.ValueLabels,
		ValueLabelsPrefix:        c.ValueLabelsPrefix,
		ValueLabelsFloatingPoint: c.ValueLabelsFloatingPoint,
		Sort:                     c.Sort,
		Reverse:                  c.Reverse,
		Naked:                    c.Naked,
		Char:                     c.Char,
		Fill:                     c.Fill,
		Color:                    c.Color,
		Theme:                    c.Theme,
		StackColors:              c.StackColors,
		MaxValue:                 c.MaxValue,
		Structure:                c.Structure,
		NoColor:                  noColor,
	}
}
