package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartscii/chartscii-go/internal/record"
)

func intPtr(n int) *int { return &n }

func TestMaxLabelWidth(t *testing.T) {
	tests := map[string]struct {
		records    []record.Record
		percentage bool
		want       int
	}{
		"empty": {
			records: nil,
			want:    0,
		},
		"scalars use printed value": {
			records: []record.Record{record.NewScalar(1234), record.NewScalar(5)},
			want:    4,
		},
		"labels win over values": {
			records: []record.Record{record.NewLabeled("apple", 100000), record.NewLabeled("kiwi", 2)},
			want:    5,
		},
		"unlabeled value": {
			records: []record.Record{record.NewLabeled("", 1.25)},
			want:    4,
		},
		"unlabeled stack uses sum": {
			records: []record.Record{record.NewStacked("", []float64{60, 40, 12})},
			want:    3,
		},
		"percentage reserves ten": {
			records:    []record.Record{record.NewLabeled("abc", 1)},
			percentage: true,
			want:       13,
		},
		"wide runes count as two columns": {
			records: []record.Record{record.NewLabeled("日本", 1)},
			want:    4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MaxLabelWidth(tt.records, tt.percentage))
		})
	}
}

func TestMaxValueLabelWidth(t *testing.T) {
	t.Parallel()

	records := []record.Record{record.NewScalar(5), record.NewScalar(123.456)}
	assert.Equal(t, 7, MaxValueLabelWidth(records, 2))
	assert.Equal(t, 4, MaxValueLabelWidth(records, 0))
	assert.Equal(t, 0, MaxValueLabelWidth(nil, 2))

	stacked := []record.Record{record.NewStacked("x", []float64{68, 21, 23})}
	assert.Equal(t, 7, MaxValueLabelWidth(stacked, 2))
}

func TestBarAreaWidth_Horizontal(t *testing.T) {
	fruit := []record.Record{record.NewLabeled("apple", 1), record.NewLabeled("kiwi", 2)}

	tests := map[string]struct {
		budget  Budget
		records []record.Record
		want    int
	}{
		"bare chart keeps one column for the axis": {
			budget:  Budget{Width: 80, Orientation: Horizontal},
			records: fruit,
			want:    79,
		},
		"naked uses the full width": {
			budget:  Budget{Width: 80, Orientation: Horizontal, Naked: true},
			records: fruit,
			want:    80,
		},
		"labels subtract label and separator": {
			budget:  Budget{Width: 40, Orientation: Horizontal, Labels: true},
			records: fruit,
			want:    33,
		},
		"percentage replaces separator": {
			budget:  Budget{Width: 40, Orientation: Horizontal, Labels: true, Percentage: true},
			records: fruit,
			want:    24,
		},
		"percentage without labels is ignored": {
			budget:  Budget{Width: 40, Orientation: Horizontal, Percentage: true},
			records: fruit,
			want:    39,
		},
		"value labels": {
			budget: Budget{
				Width: 40, Orientation: Horizontal, Labels: true,
				ValueLabels: true, ValueLabelsFloatingPoint: 2,
			},
			records: fruit,
			want:    28,
		},
		"empty orientation means horizontal": {
			budget:  Budget{Width: 30},
			records: fruit,
			want:    29,
		},
		"floored at minimum": {
			budget:  Budget{Width: 12, Orientation: Horizontal, Labels: true},
			records: []record.Record{record.NewLabeled("a very long label indeed", 1)},
			want:    MinBarAreaWidth,
		},
		"zero width": {
			budget: Budget{Width: 0, Orientation: Horizontal},
			want:   MinBarAreaWidth,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BarAreaWidth(tt.budget, tt.records))
		})
	}
}

func TestBarAreaWidth_Vertical(t *testing.T) {
	three := []record.Record{record.NewScalar(1), record.NewScalar(2), record.NewScalar(3)}
	two := three[:2]
	ten := make([]record.Record, 10)
	twenty := make([]record.Record, 20)
	for i := range twenty {
		if i < len(ten) {
			ten[i] = record.NewScalar(float64(i))
		}
		twenty[i] = record.NewScalar(float64(i))
	}

	tests := map[string]struct {
		budget  Budget
		records []record.Record
		want    int
	}{
		"explicit sizes skip the search": {
			budget: Budget{
				Width: 50, Orientation: Vertical, Naked: true,
				BarSize: intPtr(3), Padding: intPtr(1),
			},
			records: three,
			want:    50,
		},
		"explicit bar size alone skips the search": {
			budget:  Budget{Width: 50, Orientation: Vertical, BarSize: intPtr(2)},
			records: three,
			want:    49,
		},
		"closest candidate wins": {
			budget:  Budget{Width: 60, Orientation: Vertical},
			records: three,
			want:    57,
		},
		"underflow within one stops early": {
			budget:  Budget{Width: 21, Orientation: Vertical, Naked: true},
			records: two,
			want:    18,
		},
		"exact match at lower bound": {
			budget:  Budget{Width: 50, Orientation: Vertical, Naked: true},
			records: ten,
			want:    40,
		},
		"overshoot aborts after first candidate": {
			budget:  Budget{Width: 30, Orientation: Vertical, Naked: true},
			records: twenty,
			want:    24,
		},
		"no records": {
			budget: Budget{Width: 40, Orientation: Vertical},
			want:   39,
		},
		"floored at minimum": {
			budget:  Budget{Width: 5, Orientation: Vertical},
			records: three,
			want:    MinBarAreaWidth,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BarAreaWidth(tt.budget, tt.records))
		})
	}
}

func TestBarAreaWidth_DoesNotMutateRecords(t *testing.T) {
	t.Parallel()

	records := []record.Record{record.NewStacked("a", []float64{1, 2}), record.NewLabeled("b", 3)}
	before := []record.Record{record.NewStacked("a", []float64{1, 2}), record.NewLabeled("b", 3)}

	BarAreaWidth(Budget{Width: 60, Orientation: Vertical}, records)
	BarAreaWidth(Budget{Width: 60, Labels: true, ValueLabels: true}, records)
	assert.Equal(t, before, records)
}

func TestBarAreaWidth_VerticalStaysWithinWidth(t *testing.T) {
	t.Parallel()

	records := make([]record.Record, 4)
	for i := range records {
		records[i] = record.NewScalar(float64(i + 1))
	}

	for width := 20; width <= 120; width++ {
		b := Budget{Width: width, Orientation: Vertical, Naked: true}
		got := BarAreaWidth(b, records)
		assert.GreaterOrEqual(t, got, MinBarAreaWidth)
		assert.LessOrEqual(t, got, width, "width %d", width)
	}
}

func TestDefaultDimensions(t *testing.T) {
	tests := map[string]struct {
		width, count, glyph int
		thickness, padding  int
	}{
		"even split":     {width: 30, count: 3, glyph: 1, thickness: 11, padding: 0},
		"fractional":     {width: 20, count: 3, glyph: 1, thickness: 7, padding: 0},
		"wide glyph":     {width: 20, count: 2, glyph: 2, thickness: 6, padding: 0},
		"no bars":        {width: 20, count: 0, glyph: 1, thickness: 1, padding: 0},
		"narrow columns": {width: 2, count: 4, glyph: 1, thickness: 1, padding: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			thickness, padding := DefaultDimensions(tt.width, tt.count, tt.glyph)
			assert.Equal(t, tt.thickness, thickness)
			assert.Equal(t, tt.padding, padding)
		})
	}
}

func TestOutputWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 60, OutputWidth(57, 3, 1))
	assert.Equal(t, 20, OutputWidth(18, 2, 1))
	assert.Equal(t, 24, OutputWidth(20, 2, 2))
}

func TestGlyphWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, GlyphWidth(""))
	assert.Equal(t, 1, GlyphWidth("#"))
	assert.Equal(t, 2, GlyphWidth("中"))
	assert.Equal(t, 1, Budget{Char: "\u200b"}.GlyphWidth())
}
