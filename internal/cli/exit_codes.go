package cli

import (
	"github.com/chartscii/chartscii-go/internal/cli/shared"
)

// Exit codes for the chartscii CLI (re-exported from shared)
const (
	// ExitSuccess indicates the chart was drawn
	ExitSuccess = shared.ExitSuccess

	// ExitFailure indicates a runtime failure
	ExitFailure = shared.ExitFailure

	// ExitInvalidArguments indicates bad flags, arguments or input data
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitConfiguration indicates a config file or environment problem
	ExitConfiguration = shared.ExitConfiguration
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
