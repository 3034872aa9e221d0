// Package parser turns raw chart input into normalized records. It detects
// JSON, CSV, whitespace separated text, size annotated listings such as du
// output, and inline object notation passed as command line arguments.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts a whole token to a number. Surrounding whitespace is
// ignored; empty tokens, hex, Inf, NaN and tokens with trailing garbage fail.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !decimalPattern.MatchString(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Binary size multipliers.
const (
	KiB = 1 << 10
	MiB = 1 << 20
	GiB = 1 << 30
	TiB = 1 << 40
)

// ParseSize expands a size-suffixed token (e.g. "8.0K", "44M", "1.2g") into
// its magnitude using binary multipliers. Tokens without a K/M/G/T suffix, or
// whose prefix is not a plain unsigned decimal, report false.
func ParseSize(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, false
	}

	var m float64
	switch s[len(s)-1] {
	case 'K', 'k':
		m = KiB
	case 'M', 'm':
		m = MiB
	case 'G', 'g':
		m = GiB
	case 'T', 't':
		m = TiB
	default:
		return 0, false
	}

	base := s[:len(s)-1]
	if strings.ContainsAny(base, "+-eE") {
		return 0, false
	}

	v, ok := ParseNumber(base)
	if !ok {
		return 0, false
	}
	return v * m, true
}

// parseNumbers coerces every token, keeping only the ones that parse.
func parseNumbers(tokens []string) []float64 {
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := ParseNumber(tok); ok {
			out = append(out, v)
		}
	}
	return out
}

// allNumeric reports whether every token parses as a number.
func allNumeric(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := ParseNumber(tok); !ok {
			return false
		}
	}
	return true
}

// parseList parses a comma separated list where every element must be a
// number. Used for bracketed stacked values such as "[68, 21, 23]".
func parseList(s string) ([]float64, bool) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, ok := ParseNumber(p)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, len(out) > 0
}
