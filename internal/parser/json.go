package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chartscii/chartscii-go/internal/record"
)

// ParseJSON parses content strictly as a JSON array of records. Elements that
// are neither numbers nor objects with a numeric value are dropped.
func ParseJSON(content string) ([]record.Record, error) {
	data := bytes.TrimSpace([]byte(content))

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w, got %s", ErrStructure, jsonKind(raw))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	out := make([]record.Record, 0, len(items))
	for _, item := range items {
		r, err := record.Decode(item)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func jsonKind(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
