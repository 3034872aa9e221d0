package parser

import (
	"regexp"
	"strings"

	"github.com/chartscii/chartscii-go/internal/record"
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// ParseText parses whitespace separated text. A body made only of numbers
// becomes a flat list of scalars; otherwise each line is read as a label and
// value pair, falling back to pulling a number out of the line's text.
func ParseText(content string) []record.Record {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}

	if !strings.ContainsAny(trimmed, "\r\n") {
		return parseTextLine(trimmed)
	}

	var lines []string
	for _, line := range lineBreaks.Split(trimmed, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	numeric := true
	for _, line := range lines {
		if !allNumeric(strings.Fields(line)) {
			numeric = false
			break
		}
	}
	if numeric {
		return scalars(parseNumbers(strings.Fields(trimmed)))
	}

	var out []record.Record
	for _, line := range lines {
		if r, ok := pairLine(line); ok {
			out = append(out, r)
			continue
		}
		if r, ok := extractLine(line); ok {
			out = append(out, r)
		}
	}
	return out
}

func parseTextLine(line string) []record.Record {
	tokens := strings.Fields(line)
	if allNumeric(tokens) {
		return scalars(parseNumbers(tokens))
	}

	if r, ok := pairLine(line); ok {
		return []record.Record{r}
	}

	return scalars(parseNumbers(tokens))
}

func scalars(values []float64) []record.Record {
	out := make([]record.Record, len(values))
	for i, v := range values {
		out[i] = record.NewScalar(v)
	}
	return out
}
