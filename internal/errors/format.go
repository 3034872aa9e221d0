package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgRed, color.Bold)
	usageColor   = color.New(color.FgCyan)
	fixColor     = color.New(color.FgYellow)
)

// FormatError renders err as a coloured block. Plain errors are shown as
// Runtime errors.
func FormatError(err error) string {
	return format(err, true)
}

// FormatErrorPlain renders err without colour escapes.
func FormatErrorPlain(err error) string {
	return format(err, false)
}

// FormatSimpleError renders a plain error under the given category heading.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}

// FprintError writes the formatted error to w. Colour is used unless
// disabled globally.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, format(err, !color.NoColor))
}

// PrintError writes the formatted error to stderr.
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

func format(err error, colored bool) string {
	if err == nil {
		return ""
	}

	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error()}
	}

	paint := func(c *color.Color, s string) string {
		if !colored {
			return s
		}
		return c.Sprint(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", paint(headingColor, cliErr.Category.String()), cliErr.Message)

	if cliErr.Usage != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", paint(usageColor, "Usage:"), cliErr.Usage)
	}

	if len(cliErr.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", paint(fixColor, "To fix this:"))
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}
