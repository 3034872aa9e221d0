// Package layout sizes a chart: it estimates how many columns labels and
// value annotations take and derives the bar-area width that makes the
// rendered chart fit a requested total width.
package layout

import "github.com/mattn/go-runewidth"

// Orientation is the direction bars grow in.
type Orientation string

// Supported orientations.
const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

const (
	// MinBarAreaWidth is the narrowest bar area ever handed to the renderer.
	MinBarAreaWidth = 10
	// PercentageWidth is reserved for a worst-case " (100.00%)" suffix.
	PercentageWidth = 10
	// DefaultFloatingPoint is the value label precision when none is set.
	DefaultFloatingPoint = 2
	// DefaultChar is the bar glyph.
	DefaultChar = "█"
)

// Budget is the caller's target width and the display toggles that decide
// how much of it labels, structure and annotations consume. A nil BarSize or
// Padding means the renderer derives it from the width.
type Budget struct {
	Width                    int
	Orientation              Orientation
	Labels                   bool
	Percentage               bool
	ValueLabels              bool
	ValueLabelsFloatingPoint int
	Naked                    bool
	BarSize                  *int
	Padding                  *int
	Char                     string
}

// GlyphWidth is the display width of the bar glyph, at least one column.
func (b Budget) GlyphWidth() int {
	return GlyphWidth(b.Char)
}

// GlyphWidth returns the display width of char, treating an empty glyph as
// the default one.
func GlyphWidth(char string) int {
	if char == "" {
		char = DefaultChar
	}
	if w := runewidth.StringWidth(char); w > 0 {
		return w
	}
	return 1
}

// TextWidth is the number of terminal columns s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}
