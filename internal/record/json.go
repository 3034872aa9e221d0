package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnsupportedShape is returned when a JSON element is neither a number nor
// an object carrying a numeric value.
var ErrUnsupportedShape = errors.New("unsupported record shape")

const (
	keyLabel = "label"
	keyValue = "value"
	keyColor = "color"
)

// MarshalJSON encodes scalars as bare numbers and everything else as an
// object with label, value, color and any pass-through fields.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Kind == Scalar {
		return json.Marshal(r.Value)
	}

	obj := make(map[string]any, len(r.Extra)+3)
	for k, v := range r.Extra {
		obj[k] = v
	}
	if r.Label != "" {
		obj[keyLabel] = r.Label
	}
	if r.Color != "" {
		obj[keyColor] = r.Color
	}
	if r.Kind == Stacked {
		segs := r.Segments
		if segs == nil {
			segs = []float64{}
		}
		obj[keyValue] = segs
	} else {
		obj[keyValue] = r.Value
	}

	return json.Marshal(obj)
}

// UnmarshalJSON decodes a number, an object whose value is a number, or an
// object whose value is an array of numbers or {"value": n} segment objects.
func (r *Record) UnmarshalJSON(data []byte) error {
	out, err := Decode(data)
	if err != nil {
		return err
	}
	*r = out
	return nil
}

// Decode parses one JSON element into a Record. Elements of any other shape
// yield ErrUnsupportedShape.
func Decode(data []byte) (Record, error) {
	var r Record
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return r, ErrUnsupportedShape
	}

	switch data[0] {
	case '{':
		err := r.unmarshalObject(data)
		return r, err
	case '"', '[', 'n', 't', 'f':
		return r, fmt.Errorf("%w: %s", ErrUnsupportedShape, truncate(data))
	}

	v, ok := decodeFloat(data)
	if !ok {
		return r, fmt.Errorf("%w: %s", ErrUnsupportedShape, truncate(data))
	}
	return NewScalar(v), nil
}

// decodeFloat decodes a JSON number. null and every non-number fail.
func decodeFloat(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func (r *Record) unmarshalObject(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	rawValue, ok := fields[keyValue]
	if !ok {
		return fmt.Errorf("%w: object has no value", ErrUnsupportedShape)
	}

	out := Record{}
	if segs, isArray, err := decodeSegments(rawValue); isArray {
		if err != nil {
			return err
		}
		out.Kind = Stacked
		out.Segments = segs
	} else {
		v, ok := decodeFloat(rawValue)
		if !ok {
			return fmt.Errorf("%w: value is not numeric", ErrUnsupportedShape)
		}
		out.Kind = Labeled
		out.Value = v
	}

	if raw, ok := fields[keyLabel]; ok {
		out.Label = decodeText(raw)
	}
	if raw, ok := fields[keyColor]; ok {
		out.Color = decodeText(raw)
	}

	for k, raw := range fields {
		if k == keyLabel || k == keyValue || k == keyColor {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any)
		}
		out.Extra[k] = v
	}

	*r = out
	return nil
}

// decodeSegments reports whether raw is an array and, if so, its numeric
// segments. Segment objects contribute their numeric "value" field.
func decodeSegments(raw json.RawMessage) ([]float64, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, true, err
	}
	if len(items) == 0 {
		return nil, true, fmt.Errorf("%w: empty stacked value", ErrUnsupportedShape)
	}

	segs := make([]float64, 0, len(items))
	for _, item := range items {
		if v, ok := decodeFloat(item); ok {
			segs = append(segs, v)
			continue
		}
		var obj struct {
			Value *float64 `json:"value"`
		}
		if err := json.Unmarshal(item, &obj); err != nil || obj.Value == nil {
			return nil, true, fmt.Errorf("%w: non-numeric segment", ErrUnsupportedShape)
		}
		segs = append(segs, *obj.Value)
	}

	return segs, true, nil
}

// decodeText returns a JSON string's contents, or the raw JSON text for any
// other scalar so that e.g. a numeric label still displays.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	return string(trimmed)
}

func truncate(data []byte) string {
	const max = 32
	if len(data) <= max {
		return string(data)
	}
	return string(data[:max]) + "..."
}
