package parser

import (
	"regexp"
	"strings"

	"github.com/chartscii/chartscii-go/internal/record"
)

// Digits with optional comma grouping and decimals: "1,500", "99.99", ".5".
var embeddedNumberPattern = regexp.MustCompile(`[\d,]+\.?\d*|\d*\.[\d,]+`)

// extractLine pulls a number out of free text such as "$1,500" or
// "Price: 99.99". The whole line becomes the label. A line that is itself a
// number yields a scalar.
func extractLine(line string) (record.Record, bool) {
	if v, ok := ParseNumber(line); ok {
		return record.NewScalar(v), true
	}

	if v, ok := ParseSize(line); ok {
		return record.NewLabeled(line, v), true
	}

	for _, match := range embeddedNumberPattern.FindAllString(line, -1) {
		if v, ok := ParseNumber(strings.ReplaceAll(match, ",", "")); ok {
			return record.NewLabeled(line, v), true
		}
	}

	return record.Record{}, false
}
