package progress

import "github.com/fatih/color"

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	return mark(symbols.Checkmark, "✓", okColor, supportsColor)
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	return mark(symbols.Failure, "✗", failColor, supportsColor)
}

// mark colours symbol only when it is the Unicode form; ASCII fallbacks
// imply a limited terminal.
func mark(symbol, unicode string, c *color.Color, supportsColor bool) string {
	if !supportsColor || symbol != unicode {
		return symbol
	}
	c.EnableColor()
	return c.Sprint(symbol)
}
