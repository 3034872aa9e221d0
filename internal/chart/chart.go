// Package chart renders records as plain-text bar charts.
package chart

import (
	"errors"
	"slices"
	"strings"

	"github.com/chartscii/chartscii-go/internal/layout"
	"github.com/chartscii/chartscii-go/internal/record"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to chart")

// DefaultHeight is the vertical chart height in rows.
const DefaultHeight = 20

// Structure holds the glyphs that frame a chart.
type Structure struct {
	X          string `koanf:"x" json:"x" yaml:"x"`
	Y          string `koanf:"y" json:"y" yaml:"y"`
	Axis       string `koanf:"axis" json:"axis" yaml:"axis"`
	TopLeft    string `koanf:"top_left" json:"top_left" yaml:"top_left"`
	BottomLeft string `koanf:"bottom_left" json:"bottom_left" yaml:"bottom_left"`
}

// DefaultStructure returns the double-line box glyphs.
func DefaultStructure() Structure {
	return Structure{X: "═", Y: "╢", Axis: "║", TopLeft: "╔", BottomLeft: "╚"}
}

// Options control rendering. Width is the bar area, not the whole chart; use
// layout.BarAreaWidth to derive it from a total width. A nil BarSize or
// Padding lets the renderer choose.
type Options struct {
	Title       string
	Width       int
	Height      int
	Orientation layout.Orientation
	BarSize     *int
	Padding     *int

	Labels      bool
	ColorLabels bool
	Percentage  bool

	ValueLabels              bool
	ValueLabelsPrefix        string
	ValueLabelsFloatingPoint int

	Sort    bool
	Reverse bool
	Naked   bool

	Char        string
	Fill        string
	Color       string
	Theme       string
	StackColors []string
	MaxValue    *float64
	Structure   Structure
	NoColor     bool
}

// Chart is a set of records ready to render.
type Chart struct {
	records []record.Record
	opts    Options
	paint   painter
}

// New creates a chart. records is not modified.
func New(records []record.Record, opts Options) *Chart {
	return &Chart{
		records: records,
		opts:    opts.withDefaults(),
		paint:   painter{disabled: opts.NoColor},
	}
}

func (o Options) withDefaults() Options {
	if o.Char == "" {
		o.Char = layout.DefaultChar
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 1 {
		o.Width = layout.MinBarAreaWidth
	}
	if o.Orientation == "" {
		o.Orientation = layout.Horizontal
	}

	def := DefaultStructure()
	if o.Structure.X == "" {
		o.Structure.X = def.X
	}
	if o.Structure.Y == "" {
		o.Structure.Y = def.Y
	}
	if o.Structure.Axis == "" {
		o.Structure.Axis = def.Axis
	}
	if o.Structure.TopLeft == "" {
		o.Structure.TopLeft = def.TopLeft
	}
	if o.Structure.BottomLeft == "" {
		o.Structure.BottomLeft = def.BottomLeft
	}
	return o
}

// Render draws the chart. Lines are joined with "\n" without a trailing newline.
func (c *Chart) Render() (string, error) {
	if len(c.records) == 0 {
		return "", ErrNoData
	}

	records := c.prepare()

	var lines []string
	if c.opts.Title != "" {
		lines = append(lines, c.opts.Title)
	}

	if c.opts.Orientation == layout.Vertical {
		lines = append(lines, c.vertical(records)...)
	} else {
		lines = append(lines, c.horizontal(records)...)
	}

	return strings.Join(lines, "\n"), nil
}

// prepare colours, sorts and reverses a copy of the records.
func (c *Chart) prepare() []record.Record {
	records := slices.Clone(c.records)

	switch {
	case strings.EqualFold(c.opts.Color, AutoColor):
		records = ApplyAutoColors(records)
	case c.opts.Color == "":
		records = applyTheme(records, c.opts.Theme)
	}

	if c.opts.Sort {
		slices.SortStableFunc(records, func(a, b record.Record) int {
			switch ta, tb := a.Total(), b.Total(); {
			case ta < tb:
				return -1
			case ta > tb:
				return 1
			}
			return 0
		})
	}
	if c.opts.Reverse {
		slices.Reverse(records)
	}
	return records
}

// colorOf is the colour of segment i of r.
func (c *Chart) colorOf(r record.Record, i int) string {
	if r.Kind == record.Stacked {
		palette := c.opts.StackColors
		if len(palette) == 0 {
			palette = AutoColors
		}
		return palette[i%len(palette)]
	}
	if r.Color != "" {
		return r.Color
	}
	if strings.EqualFold(c.opts.Color, AutoColor) {
		return ""
	}
	return c.opts.Color
}

// scale is the value a full-length bar stands for.
func (c *Chart) scale(records []record.Record) float64 {
	if c.opts.MaxValue != nil && *c.opts.MaxValue > 0 {
		return *c.opts.MaxValue
	}
	var top float64
	for _, r := range records {
		top = max(top, r.Total())
	}
	return top
}

// cumulativeExtents maps the running segment sums of r onto 0..area cells.
// Non-stacked records have a single extent.
func cumulativeExtents(r record.Record, scale float64, area int) []int {
	values := []float64{r.Total()}
	if r.Kind == record.Stacked {
		values = r.Segments
	}

	out := make([]int, len(values))
	var running float64
	for i, v := range values {
		if v > 0 {
			running += v
		}
		out[i] = cells(running, scale, area)
	}
	return out
}

func cells(v, scale float64, area int) int {
	if scale <= 0 || v <= 0 {
		return 0
	}
	n := int(v/scale*float64(area) + 0.5)
	return min(max(n, 0), area)
}
