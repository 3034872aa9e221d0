package parser

import (
	"fmt"
	"strings"

	"github.com/chartscii/chartscii-go/internal/record"
)

// Format names an input format.
type Format string

// Supported formats. FormatAuto selects one by inspecting the content.
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// ValidFormatNames returns the accepted --format values.
func ValidFormatNames() []string {
	return []string{"auto", "json", "csv", "text"}
}

// ParseFormat normalizes a format name. Empty selects FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatCSV, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q; valid options: %s", s, strings.Join(ValidFormatNames(), ", "))
	}
}

// Result is the outcome of a parse: the records and the format that produced them.
type Result struct {
	Format  Format
	Records []record.Record
}

// strategy is one candidate format. applies is a cheap pre-check on the
// content; parse reports ok=false when the content is not in this format so
// the next strategy can be tried.
type strategy struct {
	format  Format
	applies func(string) bool
	parse   func(string) ([]record.Record, bool)
}

// strategies are tried in priority order. Text accepts everything.
var strategies = []strategy{
	{
		format: FormatJSON,
		applies: func(s string) bool {
			return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")
		},
		parse: func(s string) ([]record.Record, bool) {
			records, err := ParseJSON(s)
			return records, err == nil
		},
	},
	{
		format:  FormatCSV,
		applies: hasCommaOutsideBrackets,
		parse: func(s string) ([]record.Record, bool) {
			records := ParseCSV(s)
			return records, len(records) > 0
		},
	},
	{
		format:  FormatText,
		applies: func(string) bool { return true },
		parse: func(s string) ([]record.Record, bool) {
			return ParseText(s), true
		},
	},
}

// Parse auto-detects the format of content and parses it. Only blank input
// is an error; when JSON or CSV do not fit, parsing falls through to text.
func Parse(content string) ([]record.Record, error) {
	res, err := Analyze(content)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Analyze is Parse that also reports which format was detected.
func Analyze(content string) (Result, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Result{}, ErrEmptyInput
	}

	for _, s := range strategies {
		if !s.applies(trimmed) {
			continue
		}
		if records, ok := s.parse(trimmed); ok {
			return Result{Format: s.format, Records: records}, nil
		}
	}

	// unreachable: the text strategy always accepts
	return Result{Format: FormatText}, nil
}

// ParseAs parses content in the given format without falling back. A forced
// JSON parse reports ErrInvalidFormat and ErrStructure.
func ParseAs(content string, format Format) (Result, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Result{}, ErrEmptyInput
	}

	switch format {
	case FormatAuto, "":
		return Analyze(trimmed)
	case FormatJSON:
		records, err := ParseJSON(trimmed)
		if err != nil {
			return Result{}, err
		}
		return Result{Format: FormatJSON, Records: records}, nil
	case FormatCSV:
		return Result{Format: FormatCSV, Records: ParseCSV(trimmed)}, nil
	case FormatText:
		return Result{Format: FormatText, Records: ParseText(trimmed)}, nil
	default:
		return Result{}, fmt.Errorf("unsupported format %q", format)
	}
}

// hasCommaOutsideBrackets reports whether some comma is not enclosed by a
// bracket pair, so "[1, 2, 3]" and "label [1, 2]" are not mistaken for CSV.
// A comma counts as enclosed when a "]" follows it before any "[".
func hasCommaOutsideBrackets(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			continue
		}
		rest := s[i+1:]
		closeIdx := strings.IndexByte(rest, ']')
		openIdx := strings.IndexByte(rest, '[')
		if closeIdx < 0 || (openIdx >= 0 && openIdx < closeIdx) {
			return true
		}
	}
	return false
}

// Detect reports the format Parse would pick for content. Blank content
// reports FormatAuto.
func Detect(content string) Format {
	res, err := Analyze(content)
	if err != nil {
		return FormatAuto
	}
	return res.Format
}
