package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows a spinner with a message on a terminal and stays silent
// otherwise, so piped stderr never receives animation frames.
type Display struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer
	spinner      *spinner.Spinner
}

// NewDisplay creates a display writing to out with the given capabilities.
func NewDisplay(caps TerminalCapabilities, out io.Writer) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Start shows msg next to a spinner. A running spinner is replaced.
func (d *Display) Start(msg string) {
	d.Stop()
	if !d.capabilities.IsTTY {
		return
	}

	writer := spinner.WithWriter(d.out)
	if f, ok := d.out.(*os.File); ok {
		writer = spinner.WithWriterFile(f)
	}

	d.spinner = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond, writer)
	d.spinner.Suffix = " " + msg
	d.spinner.Start()
}

// Active reports whether a spinner is running.
func (d *Display) Active() bool {
	return d.spinner != nil
}

// Stop removes the spinner, if any.
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// Done stops the spinner and, on a terminal, prints msg with a checkmark.
func (d *Display) Done(msg string) {
	d.Stop()
	if d.capabilities.IsTTY {
		fmt.Fprintf(d.out, "%s %s\n", checkmark(d.symbols, d.capabilities.SupportsColor), msg)
	}
}

// Fail stops the spinner and prints msg and err with a failure mark.
func (d *Display) Fail(msg string, err error) {
	d.Stop()
	fmt.Fprintf(d.out, "%s %s: %v\n", failureMark(d.symbols, d.capabilities.SupportsColor), msg, err)
}
