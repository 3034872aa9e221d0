package errors

import "fmt"

const chartUsage = "chartscii [data...] [flags]"

// NoInputProvided is returned when there are no arguments, no file and
// nothing piped on stdin.
func NoInputProvided() *CLIError {
	return NewArgumentErrorWithUsage(
		"no input provided",
		chartUsage,
		"Pass values as arguments: chartscii 1 2 3",
		"Pass a file: chartscii data.json",
		"Pipe data: echo \"1 2 3\" | chartscii",
	)
}

// FileNotFound is returned when an explicit --file path does not exist.
func FileNotFound(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("file not found: %s", path),
		"Check the path passed to --file",
	)
}

// InvalidJSONInput is returned when input forced to JSON does not parse.
func InvalidJSONInput(err error) *CLIError {
	return WrapWithMessage(err, Argument, "input is not valid JSON",
		"Validate the file with a JSON linter",
		"Use --format auto to let chartscii detect the format",
	)
}

// NotAnArray is returned when a JSON document is not a top-level array.
func NotAnArray(err error) *CLIError {
	return WrapWithMessage(err, Argument, "JSON input must be an array",
		"Wrap the values in [ ... ]",
	)
}

// InvalidFlagValue is returned when a flag value cannot be used.
func InvalidFlagValue(flag, value, expected string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid value %q for --%s", value, flag),
		fmt.Sprintf("Expected %s", expected),
	)
}

// NoChartableData is returned when the input parsed but yielded no records.
func NoChartableData() *CLIError {
	return NewArgumentErrorWithUsage(
		"no valid data to chart",
		chartUsage,
		"Make sure the input contains numbers",
		"Run chartscii inspect to see how the input was parsed",
	)
}

// ConfigFileNotFound is returned when an explicit config path is missing.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Check the path passed to --config",
		"Run chartscii config path to see where config is read from",
	)
}

// ConfigParseError is returned when configuration fails to load or validate.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration, fmt.Sprintf("failed to load config %s", path),
		"Check the file is valid JSON",
		"Run chartscii config show to see the effective configuration",
	)
}

// InvalidFlagCombination is returned when flags conflict.
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid flag combination %s: %s", flags, reason),
	)
}

// RenderFailed wraps a renderer failure.
func RenderFailed(err error) *CLIError {
	return Wrap(err, Runtime, "Run with --debug for details")
}
