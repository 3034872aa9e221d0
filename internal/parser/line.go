package parser

import (
	"regexp"
	"strings"

	"github.com/chartscii/chartscii-go/internal/record"
)

// label [100, 50, 30]
var lineArrayPattern = regexp.MustCompile(`^(.+?)\s+\[([^\[\]]*)\]$`)

// pairLine interprets a whitespace separated line holding a label and a value.
// It understands bracketed and pipe separated stacked values, and a plain or
// size-suffixed number at either end of the line, e.g. "8.0K CONTRIBUTING.md"
// or "CONTRIBUTING.md 8.0K".
func pairLine(line string) (record.Record, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return record.Record{}, false
	}

	if m := lineArrayPattern.FindStringSubmatch(line); m != nil {
		if values, ok := parseList(m[2]); ok {
			return record.NewStacked(strings.TrimSpace(m[1]), values), true
		}
	}

	first, last := tokens[0], tokens[len(tokens)-1]
	leading := strings.Join(tokens[:len(tokens)-1], " ")
	trailing := strings.Join(tokens[1:], " ")

	if values, ok := pipeValues(last); ok {
		return record.NewStacked(leading, values), true
	}
	if values, ok := pipeValues(first); ok {
		return record.NewStacked(trailing, values), true
	}

	if v, ok := ParseSize(first); ok {
		return record.NewLabeled(trailing, v), true
	}
	if v, ok := ParseNumber(first); ok {
		return record.NewLabeled(trailing, v), true
	}

	if v, ok := ParseSize(last); ok {
		return record.NewLabeled(leading, v), true
	}
	if v, ok := ParseNumber(last); ok {
		return record.NewLabeled(leading, v), true
	}

	return record.Record{}, false
}

// pipeValues parses "100|50|30". At least two numbers are required.
func pipeValues(token string) ([]float64, bool) {
	if !strings.Contains(token, "|") {
		return nil, false
	}
	values := parseNumbers(strings.Split(token, "|"))
	return values, len(values) > 1
}
