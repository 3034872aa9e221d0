package chart

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/chartscii/chartscii-go/internal/layout"
	"github.com/chartscii/chartscii-go/internal/record"
)

// horizontal draws one row group per record followed by the bottom border.
func (c *Chart) horizontal(records []record.Record) []string {
	o := c.opts
	thickness, padding := 1, 0
	if o.BarSize != nil && *o.BarSize > 0 {
		thickness = *o.BarSize
	}
	if o.Padding != nil && *o.Padding > 0 {
		padding = *o.Padding
	}

	labelWidth, sep := 0, ""
	if o.Labels {
		labelWidth = layout.MaxLabelWidth(records, o.Percentage)
		if !o.Percentage {
			sep = " "
		}
	}
	gutter := strings.Repeat(" ", labelWidth) + sep

	scale := c.scale(records)
	sum := 0.0
	for _, r := range records {
		sum += r.Total()
	}

	var lines []string
	for i, r := range records {
		if i > 0 {
			for range padding {
				lines = append(lines, c.gapRow(gutter))
			}
		}

		label := ""
		if o.Labels {
			label = c.labelCell(r, labelWidth, sum) + sep
		}
		bar := c.horizontalBar(r, scale)
		value := c.valueLabel(r)

		for row := range thickness {
			if row == 0 {
				lines = append(lines, label+c.yGlyph()+bar+value)
				continue
			}
			lines = append(lines, gutter+c.yGlyph()+bar)
		}
	}

	if !o.Naked {
		lines = append(lines, gutter+o.Structure.BottomLeft+repeatCells(o.Structure.X, o.Width))
	}
	return lines
}

func (c *Chart) yGlyph() string {
	if c.opts.Naked {
		return ""
	}
	return c.opts.Structure.Y
}

func (c *Chart) gapRow(gutter string) string {
	if c.opts.Naked {
		return ""
	}
	return gutter + c.opts.Structure.Axis
}

// labelCell is the record label, with its share of the total when
// percentages are on, padded to width columns.
func (c *Chart) labelCell(r record.Record, width int, sum float64) string {
	text := r.DisplayLabel()
	if c.opts.Percentage {
		pct := 0.0
		if sum != 0 {
			pct = r.Total() / sum * 100
		}
		text += fmt.Sprintf(" (%s%%)", record.FormatFixed(pct, 2))
	}

	pad := max(width-runewidth.StringWidth(text), 0)
	if c.opts.ColorLabels {
		text = c.paint.paint(c.colorOf(r, 0), text)
	}
	return text + strings.Repeat(" ", pad)
}

// horizontalBar draws the bar for r and, with a fill glyph set, pads the rest
// of the bar area with it.
func (c *Chart) horizontalBar(r record.Record, scale float64) string {
	o := c.opts
	var b strings.Builder

	prev := 0
	for i, end := range cumulativeExtents(r, scale, o.Width) {
		seg := repeatCells(o.Char, end-prev)
		b.WriteString(c.paint.paint(c.colorOf(r, i), seg))
		prev += runewidth.StringWidth(seg)
	}

	if o.Fill != "" {
		b.WriteString(repeatCells(o.Fill, o.Width-prev))
	}
	return b.String()
}

func (c *Chart) valueLabel(r record.Record) string {
	if !c.opts.ValueLabels {
		return ""
	}
	return " " + c.opts.ValueLabelsPrefix + record.FormatFixed(r.Total(), c.opts.ValueLabelsFloatingPoint)
}

// repeatCells repeats glyph to fill at most cols columns.
func repeatCells(glyph string, cols int) string {
	if cols <= 0 || glyph == "" {
		return ""
	}
	return strings.Repeat(glyph, cols/layout.GlyphWidth(glyph))
}
