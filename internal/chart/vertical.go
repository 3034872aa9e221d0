package chart

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/chartscii/chartscii-go/internal/layout"
	"github.com/chartscii/chartscii-go/internal/record"
)

// vertical draws Height rows of columns, the bottom border and a row of
// label initials.
func (c *Chart) vertical(records []record.Record) []string {
	o := c.opts
	glyph := layout.GlyphWidth(o.Char)

	thickness, padding := layout.DefaultDimensions(o.Width, len(records), glyph)
	if o.BarSize != nil {
		thickness = max(*o.BarSize, 1)
	}
	if o.Padding != nil {
		padding = max(*o.Padding, 0)
	}

	scale := c.scale(records)
	tops := make([][]int, len(records))
	for i, r := range records {
		tops[i] = cumulativeExtents(r, scale, o.Height)
	}

	bar := strings.Repeat(o.Char, thickness)
	empty := strings.Repeat(" ", thickness*glyph)
	if o.Fill != "" {
		empty = repeatCells(o.Fill, thickness*glyph)
	}
	gap := strings.Repeat(" ", padding)

	lead := ""
	if !o.Naked {
		lead = o.Structure.Axis
	}

	lines := make([]string, 0, o.Height+2)
	for row := o.Height; row >= 1; row-- {
		var b strings.Builder
		b.WriteString(lead)
		for i, r := range records {
			if seg := segmentAt(tops[i], row); seg >= 0 {
				b.WriteString(c.paint.paint(c.colorOf(r, seg), bar))
			} else {
				b.WriteString(empty)
			}
			b.WriteString(gap)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}

	if !o.Naked {
		span := len(records) * (thickness*glyph + padding)
		lines = append(lines, o.Structure.BottomLeft+repeatCells(o.Structure.X, span))
	}

	if o.Labels {
		lines = append(lines, c.initials(records, thickness*glyph, padding))
	}
	return lines
}

// segmentAt returns the index of the segment covering row (1 is the bottom),
// or -1 when the row is above the bar.
func segmentAt(tops []int, row int) int {
	for i, top := range tops {
		if row <= top {
			return i
		}
	}
	return -1
}

// initials centres the first character of each label under its column.
func (c *Chart) initials(records []record.Record, slot, padding int) string {
	var b strings.Builder
	if !c.opts.Naked {
		b.WriteString(strings.Repeat(" ", layout.TextWidth(c.opts.Structure.Axis)))
	}

	for _, r := range records {
		initial := firstRune(r.DisplayLabel())
		w := runewidth.StringWidth(initial)
		left := max((slot-w)/2, 0)
		right := max(slot-w-left, 0)

		if c.opts.ColorLabels {
			initial = c.paint.paint(c.colorOf(r, 0), initial)
		}
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(initial)
		b.WriteString(strings.Repeat(" ", right+padding))
	}
	return strings.TrimRight(b.String(), " ")
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
