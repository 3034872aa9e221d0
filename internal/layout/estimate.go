package layout

import "github.com/chartscii/chartscii-go/internal/record"

// MaxLabelWidth returns the widest label any record will display. Records
// without a label show their printed value, stacked records their total.
// With percentages on, every non-empty label reserves PercentageWidth more.
func MaxLabelWidth(records []record.Record, percentage bool) int {
	widest := 0
	for _, r := range records {
		w := TextWidth(r.DisplayLabel())
		if percentage && w > 0 {
			w += PercentageWidth
		}
		if w > widest {
			widest = w
		}
	}
	return widest
}

// MaxValueLabelWidth returns the widest value annotation, each value printed
// with precision fractional digits and preceded by one separator column.
func MaxValueLabelWidth(records []record.Record, precision int) int {
	widest := 0
	for _, r := range records {
		w := len(record.FormatFixed(r.Total(), precision)) + 1
		if w > widest {
			widest = w
		}
	}
	return widest
}
