package progress_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartscii/chartscii-go/internal/progress"
)

func TestDisplay_SilentWithoutTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := progress.NewDisplay(progress.TerminalCapabilities{}, &buf)

	d.Start("Reading stdin")
	assert.False(t, d.Active())
	d.Done("Read 3 lines")
	d.Stop()

	assert.Empty(t, buf.String())
}

func TestDisplay_StartStop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := progress.NewDisplay(progress.TerminalCapabilities{IsTTY: true}, &buf)

	d.Start("Reading stdin")
	assert.True(t, d.Active())

	d.Start("Still reading")
	assert.True(t, d.Active(), "restarting replaces the spinner")

	d.Stop()
	assert.False(t, d.Active())
	d.Stop()
}

func TestDisplay_Done(t *testing.T) {
	tests := map[string]struct {
		caps progress.TerminalCapabilities
		want string
	}{
		"unicode": {
			caps: progress.TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			want: "✓ Read input\n",
		},
		"ascii": {
			caps: progress.TerminalCapabilities{IsTTY: true},
			want: "[OK] Read input\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			d := progress.NewDisplay(tt.caps, &buf)
			d.Done("Read input")

			assert.False(t, d.Active())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDisplay_Fail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := progress.NewDisplay(progress.TerminalCapabilities{}, &buf)
	d.Fail("reading stdin", errors.New("broken pipe"))

	assert.Equal(t, "[FAIL] reading stdin: broken pipe\n", buf.String())
}

func TestDisplay_ColoredMarks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := progress.NewDisplay(progress.TerminalCapabilities{IsTTY: true, SupportsUnicode: true, SupportsColor: true}, &buf)
	d.Done("ok")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "✓")
}
