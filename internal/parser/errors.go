package parser

import "errors"

// Errors raised by the parsers. Every other malformed token, line or field is
// dropped rather than reported.
var (
	// ErrEmptyInput is returned when the trimmed input is blank.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidFormat is returned when input parsed as JSON is not valid JSON.
	ErrInvalidFormat = errors.New("invalid JSON")
	// ErrStructure is returned when valid JSON is not an array at the top level.
	ErrStructure = errors.New("JSON must be an array")
)
