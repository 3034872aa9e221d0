// Package shared provides constants and helpers used across CLI subpackages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	"errors"
	"fmt"

	clierrors "github.com/chartscii/chartscii-go/internal/errors"
)

// Command group IDs for organizing help output
const (
	GroupCharts        = "charts"
	GroupConfiguration = "configuration"
	GroupInfo          = "info"
)

// Exit codes for CLI commands
const (
	ExitSuccess          = 0
	ExitFailure          = 1
	ExitInvalidArguments = 3
	ExitConfiguration    = 4
)

// exitError is a custom error type that carries an exit code. Its message
// has already been reported by the time it is returned.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// IsExitError reports whether err only carries an exit code.
func IsExitError(err error) bool {
	var e *exitError
	return errors.As(err, &e)
}

// ExitCode returns the exit code for an error. Categorised CLI errors map by
// category; anything else is a runtime failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument, clierrors.Prerequisite:
			return ExitInvalidArguments
		case clierrors.Configuration:
			return ExitConfiguration
		}
	}
	return ExitFailure
}
