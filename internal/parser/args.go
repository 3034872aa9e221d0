package parser

import (
	"regexp"
	"strings"

	"github.com/chartscii/chartscii-go/internal/record"
)

// key: 'quoted', key: "quoted", key: bare
var objectNotationPattern = regexp.MustCompile(`([a-zA-Z]+):\s*('[^']*'|"[^"]*"|[^,{}]+)`)

// ParseArgs parses command line data tokens. Each token is a number, or an
// object notation string such as "label: 'foo', value: 10". Anything else is
// dropped.
func ParseArgs(tokens []string) []record.Record {
	out := make([]record.Record, 0, len(tokens))

	for _, tok := range tokens {
		if v, ok := ParseNumber(tok); ok {
			out = append(out, record.NewScalar(v))
			continue
		}

		if !strings.Contains(tok, ":") {
			continue
		}
		if r, ok := parseObjectNotation(tok); ok {
			out = append(out, r)
		}
	}

	return out
}

// parseObjectNotation builds a record from key: value pairs. The token is
// rejected unless it has a value key that is numeric, or pipe separated
// numbers for a stacked record.
func parseObjectNotation(s string) (record.Record, bool) {
	var (
		r        record.Record
		hasValue bool
	)

	for _, m := range objectNotationPattern.FindAllStringSubmatch(s, -1) {
		key, value := m[1], unquote(strings.TrimSpace(m[2]))

		switch key {
		case "value":
			if v, ok := ParseNumber(value); ok {
				r.Kind, r.Value, r.Segments = record.Labeled, v, nil
				hasValue = true
			} else if segs, ok := pipeValues(value); ok {
				r.Kind, r.Value, r.Segments = record.Stacked, 0, segs
				hasValue = true
			} else {
				return record.Record{}, false
			}
		case "label":
			r.Label = value
		case "color":
			r.Color = value
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = value
		}
	}

	if !hasValue {
		return record.Record{}, false
	}
	return r, true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
