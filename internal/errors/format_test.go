package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		if result := FormatError(nil); result != "" {
			t.Errorf("Expected empty string, got %q", result)
		}
	})

	t.Run("includes heading, usage and steps", func(t *testing.T) {
		t.Parallel()
		err := &CLIError{
			Category:    Argument,
			Message:     "no input provided",
			Usage:       "chartscii [data...]",
			Remediation: []string{"pipe data", "pass a file"},
		}

		result := FormatError(err)

		for _, want := range []string{"Argument Error", "no input provided", "Usage:", "chartscii [data...]", "To fix this:", "pipe data", "pass a file"} {
			if !strings.Contains(result, want) {
				t.Errorf("Expected output to contain %q, got %q", want, result)
			}
		}
	})

	t.Run("plain errors render as runtime errors", func(t *testing.T) {
		t.Parallel()
		result := FormatErrorPlain(stderrors.New("boom"))
		if result != "Runtime Error: boom\n" {
			t.Errorf("Unexpected output %q", result)
		}
	})
}

func TestFormatErrorPlain(t *testing.T) {
	err := &CLIError{
		Category:    Configuration,
		Message:     "bad width",
		Remediation: []string{"set width to a positive number"},
	}

	got := FormatErrorPlain(err)
	want := "Configuration Error: bad width\n\nTo fix this:\n  - set width to a positive number\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("Expected no ANSI escape codes")
	}
}

func TestFprintError(t *testing.T) {
	t.Run("nil error does nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, nil)
		if buf.Len() != 0 {
			t.Errorf("Expected no output for nil error, got %q", buf.String())
		}
	})

	t.Run("writes error to buffer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		FprintError(&buf, FileNotFound("/tmp/missing.csv"))
		if !strings.Contains(buf.String(), "/tmp/missing.csv") {
			t.Error("Expected buffer to contain the path")
		}
	})
}

func TestPrintError(t *testing.T) {
	// Writes to stderr; only checks it does not panic.
	PrintError(NewRuntimeError("test"))
	PrintError(nil)
}

func TestFormatSimpleError(t *testing.T) {
	if result := FormatSimpleError(nil, Runtime); result != "" {
		t.Errorf("Expected empty string, got %q", result)
	}

	result := FormatSimpleError(&testError{}, Configuration)
	if !strings.Contains(result, "Configuration Error") || !strings.Contains(result, "test error") {
		t.Errorf("Unexpected output %q", result)
	}
}
