package parser

import (
	"regexp"
	"strings"

	"github.com/chartscii/chartscii-go/internal/record"
)

var (
	// JavaScript,[68, 21, 23]
	csvArrayPattern = regexp.MustCompile(`^([^,]+),\s*\[([^\[\]]*)\]$`)
	// JavaScript,68|21|23
	csvPipePattern = regexp.MustCompile(`^([^,]+),\s*([\d.]+(?:\|[\d.]+)+)$`)
	// JavaScript,"68 21 23"
	csvQuotedPattern = regexp.MustCompile(`^([^,]+),\s*"([\d\s.]+)"$`)
)

// ParseCSV parses comma separated content, one record per line. Blank lines
// are skipped and fields that do not parse are dropped.
func ParseCSV(content string) []record.Record {
	var out []record.Record

	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, parseCSVLine(line)...)
	}

	return out
}

func parseCSVLine(line string) []record.Record {
	if r, ok := parseCSVStacked(line); ok {
		return []record.Record{r}
	}

	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 1:
		if v, ok := ParseNumber(parts[0]); ok {
			return []record.Record{record.NewScalar(v)}
		}
		return nil
	case 2:
		if v, ok := ParseNumber(parts[1]); ok {
			return []record.Record{record.NewLabeled(parts[0], v)}
		}
		return nil
	}

	if _, numeric := ParseNumber(parts[0]); !numeric {
		values := parseNumbers(parts[1:])
		switch {
		case len(values) > 1:
			return []record.Record{record.NewStacked(parts[0], values)}
		case len(values) == 1:
			return []record.Record{record.NewLabeled(parts[0], values[0])}
		}
	}

	var out []record.Record
	for _, v := range parseNumbers(parts) {
		out = append(out, record.NewScalar(v))
	}
	return out
}

// parseCSVStacked tries the bracketed, pipe and quoted stacked notations in
// that order. They are strictly more specific than plain comma splitting.
func parseCSVStacked(line string) (record.Record, bool) {
	if m := csvArrayPattern.FindStringSubmatch(line); m != nil {
		if values, ok := parseList(m[2]); ok {
			return record.NewStacked(strings.TrimSpace(m[1]), values), true
		}
	}

	if m := csvPipePattern.FindStringSubmatch(line); m != nil {
		if values := parseNumbers(strings.Split(m[2], "|")); len(values) > 1 {
			return record.NewStacked(strings.TrimSpace(m[1]), values), true
		}
	}

	if m := csvQuotedPattern.FindStringSubmatch(line); m != nil {
		if values := parseNumbers(strings.Fields(m[2])); len(values) > 1 {
			return record.NewStacked(strings.TrimSpace(m[1]), values), true
		}
	}

	return record.Record{}, false
}
