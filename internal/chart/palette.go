package chart

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/chartscii/chartscii-go/internal/record"
)

// AutoColor is the colour name that cycles AutoColors across records.
const AutoColor = "auto"

// AutoColors is the cycle used by --color auto and for stacked segments.
var AutoColors = []string{
	"red", "green", "yellow", "blue", "purple", "cyan", "pink", "orange", "marine",
}

var namedColors = map[string][]color.Attribute{
	"black":   {color.FgBlack},
	"red":     {color.FgRed},
	"green":   {color.FgGreen},
	"yellow":  {color.FgYellow},
	"blue":    {color.FgBlue},
	"purple":  {color.FgMagenta},
	"magenta": {color.FgMagenta},
	"cyan":    {color.FgCyan},
	"white":   {color.FgWhite},
	"gray":    {color.FgHiBlack},
	"grey":    {color.FgHiBlack},
	"pink":    ansi256(213),
	"orange":  ansi256(208),
	"marine":  ansi256(31),
}

var themes = map[string][]string{
	"pastel": {"217", "223", "229", "157", "159", "183"},
	"lush":   {"22", "28", "34", "40", "46", "82"},
	"beach":  {"31", "38", "229", "222", "215", "180"},
	"sunset": {"196", "202", "208", "214", "220", "226"},
	"ocean":  {"17", "18", "19", "20", "27", "33"},
	"mono":   {"252", "248", "244", "240", "236"},
}

// ApplyAutoColors returns copies of records coloured by position from
// AutoColors. Scalars become unlabeled Labeled records.
func ApplyAutoColors(records []record.Record) []record.Record {
	return cycle(records, AutoColors)
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

func applyTheme(records []record.Record, theme string) []record.Record {
	palette, ok := themes[strings.ToLower(theme)]
	if !ok {
		return records
	}
	out := make([]record.Record, len(records))
	for i, r := range records {
		if r.Color != "" {
			out[i] = r
			continue
		}
		out[i] = r.WithColor(palette[i%len(palette)])
	}
	return out
}

func cycle(records []record.Record, palette []string) []record.Record {
	out := make([]record.Record, len(records))
	for i, r := range records {
		out[i] = r.WithColor(palette[i%len(palette)])
	}
	return out
}

// lookup resolves a colour name, a "#rrggbb" hex value or an ANSI 256 index.
// Unknown names resolve to nil.
func lookup(name string) *color.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	if attrs, ok := namedColors[name]; ok {
		return color.New(attrs...)
	}
	if strings.HasPrefix(name, "#") {
		return hexColor(name[1:])
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= 255 {
		return color.New(ansi256(n)...)
	}
	return nil
}

func hexColor(hex string) *color.Color {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	return color.New(38, 2, color.Attribute(v>>16&0xff), color.Attribute(v>>8&0xff), color.Attribute(v&0xff))
}

func ansi256(n int) []color.Attribute {
	return []color.Attribute{38, 5, color.Attribute(n)}
}

// painter wraps text in colour escapes unless disabled.
type painter struct {
	disabled bool
}

func (p painter) paint(name, s string) string {
	if p.disabled || s == "" {
		return s
	}
	c := lookup(name)
	if c == nil {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}
