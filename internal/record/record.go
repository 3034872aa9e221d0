// Package record defines the normalized unit of chartable data produced by
// the parsers and consumed by the layout estimator and the chart renderer.
package record

// Kind identifies which of the three record shapes a Record holds.
type Kind int

const (
	// Scalar is a bare number with no label.
	Scalar Kind = iota
	// Labeled is a single numeric value with an optional label.
	Labeled
	// Stacked is an ordered list of segment values with an optional label.
	Stacked
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Labeled:
		return "labeled"
	case Stacked:
		return "stacked"
	default:
		return "unknown"
	}
}

// Record is one chartable entry. Value is meaningful for Scalar and Labeled
// records, Segments only for Stacked records.
type Record struct {
	Kind     Kind
	Label    string
	Value    float64
	Segments []float64
	// Color and Extra are styling fields passed through to the renderer untouched.
	Color string
	Extra map[string]any
}

// NewScalar creates a bare numeric record.
func NewScalar(v float64) Record {
	return Record{Kind: Scalar, Value: v}
}

// NewLabeled creates a single-value record.
func NewLabeled(label string, v float64) Record {
	return Record{Kind: Labeled, Label: label, Value: v}
}

// NewStacked creates a multi-segment record. The segments slice is copied.
func NewStacked(label string, segments []float64) Record {
	segs := make([]float64, len(segments))
	copy(segs, segments)
	return Record{Kind: Stacked, Label: label, Segments: segs}
}

// Total returns the value a bar represents: the value itself, or the sum of
// the segments for stacked records.
func (r Record) Total() float64 {
	if r.Kind != Stacked {
		return r.Value
	}
	var sum float64
	for _, s := range r.Segments {
		sum += s
	}
	return sum
}

// HasLabel reports whether the record carries a non-empty label.
func (r Record) HasLabel() bool {
	return r.Kind != Scalar && r.Label != ""
}

// DisplayLabel is the text shown next to a bar. Records without a label fall
// back to their printed total.
func (r Record) DisplayLabel() string {
	if r.HasLabel() {
		return r.Label
	}
	return FormatNumber(r.Total())
}

// WithColor returns a copy of r carrying the given colour. Scalars are
// promoted to unlabeled Labeled records since a bare number cannot hold style.
func (r Record) WithColor(color string) Record {
	out := r
	if out.Kind == Scalar {
		out.Kind = Labeled
	}
	out.Color = color
	return out
}

// Totals returns the Total of every record in order.
func Totals(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Total()
	}
	return out
}
