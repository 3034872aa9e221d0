package layout

import (
	"math"

	"github.com/chartscii/chartscii-go/internal/record"
)

// Vertical search window and tolerances.
const (
	searchLowerBound = 0.8
	overshootLimit   = 5
)

// BarAreaWidth derives the bar-area width to give the renderer so that the
// finished chart, with labels, structure and annotations added back, is
// b.Width columns wide. The result is never below MinBarAreaWidth.
func BarAreaWidth(b Budget, records []record.Record) int {
	if b.Orientation == Vertical {
		return verticalBarAreaWidth(b, records)
	}
	return horizontalBarAreaWidth(b, records)
}

func horizontalBarAreaWidth(b Budget, records []record.Record) int {
	consumed := 0

	if b.Labels {
		consumed += MaxLabelWidth(records, b.Percentage)
		// The percentage reservation already includes the separator.
		if !b.Percentage {
			consumed++
		}
	}

	if !b.Naked {
		consumed++
	}

	if b.ValueLabels {
		consumed += MaxValueLabelWidth(records, b.ValueLabelsFloatingPoint)
	}

	return max(MinBarAreaWidth, b.Width-consumed)
}

func verticalBarAreaWidth(b Budget, records []record.Record) int {
	available := b.Width
	if !b.Naked {
		available--
	}

	if b.BarSize != nil || b.Padding != nil || len(records) == 0 || available < MinBarAreaWidth {
		return max(MinBarAreaWidth, available)
	}

	return max(MinBarAreaWidth, searchVerticalWidth(available, len(records), b.GlyphWidth()))
}

// searchVerticalWidth finds the candidate width whose rendered output comes
// closest to available, preferring candidates that do not overflow.
func searchVerticalWidth(available, count, glyph int) int {
	low := int(math.Floor(float64(available) * searchLowerBound))

	best, bestDiff := available, math.MaxInt
	for candidate := low; candidate <= available; candidate++ {
		out := OutputWidth(candidate, count, glyph)
		diff := abs(out - available)

		if diff < bestDiff || (diff == bestDiff && out <= available) {
			best, bestDiff = candidate, diff
			if out == available || (out < available && diff <= 1) {
				break
			}
		}

		if out > available+overshootLimit {
			break
		}
	}

	return best
}

// DefaultDimensions is how the renderer picks bar thickness and padding for
// a vertical chart when neither is configured.
func DefaultDimensions(width, count, glyph int) (thickness, padding int) {
	if count <= 0 || glyph <= 0 {
		return 1, 0
	}

	ratio := float64(width) / float64(count) / float64(glyph)
	thickness = int(math.Floor(ratio)) + 1
	padding = int(math.Floor(ratio + 0.5))
	if padding <= thickness {
		padding = 0
	} else {
		padding -= thickness
	}
	return thickness, padding
}

// OutputWidth is the width the renderer produces for count vertical bars
// when given width and left to choose its own dimensions.
func OutputWidth(width, count, glyph int) int {
	thickness, padding := DefaultDimensions(width, count, glyph)
	return count * (thickness*glyph + padding)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
