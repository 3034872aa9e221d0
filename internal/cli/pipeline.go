package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chartscii/chartscii-go/internal/cli/shared"
	"github.com/chartscii/chartscii-go/internal/config"
	clierrors "github.com/chartscii/chartscii-go/internal/errors"
	"github.com/chartscii/chartscii-go/internal/parser"
	"github.com/chartscii/chartscii-go/internal/progress"
	"github.com/chartscii/chartscii-go/internal/reader"
	"github.com/chartscii/chartscii-go/internal/record"
)

// formatArgs labels records parsed from positional arguments.
const formatArgs = "args"

// errNoInput is returned when there is nothing to chart; commands answer it
// with their usage.
var errNoInput = errors.New("no input")

// input is parsed chart data and where it came from.
type input struct {
	source  reader.Source
	format  string
	records []record.Record
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the effective configuration with explicitly set flags on
// top. A missing --config file is an error only when the flag was given.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	if cmd.Flags().Changed("config") && !reader.IsFilePath(path) {
		return nil, clierrors.ConfigFileNotFound(path)
	}

	overrides, err := overridesFromFlags(cmd.Flags())
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Argument)
	}

	cfg, err := config.LoadWithOverrides(path, overrides)
	if err != nil {
		return nil, configError(path, overrides, err)
	}

	slog.Debug("loaded configuration", "path", path, "overrides", len(overrides))
	return cfg, nil
}

// configError reports a bad flag value as an argument error and anything
// else as a configuration error.
func configError(path string, overrides map[string]any, err error) error {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		if value, ok := overrides[verr.Field]; ok {
			if flag, ok := flagForKey(verr.Field); ok {
				return clierrors.InvalidFlagValue(flag, fmt.Sprint(value), verr.Message)
			}
		}
	}
	return clierrors.ConfigParseError(path, err)
}

// loadInput resolves the input source and parses it into records.
func loadInput(ctx context.Context, cmd *cobra.Command, cfg *config.Configuration, args []string) (input, error) {
	file, _ := cmd.Flags().GetString("file")

	opts := reader.Options{
		File:        file,
		Stdin:       cmd.InOrStdin(),
		Interactive: isInteractive(cmd.InOrStdin()),
	}
	if cfg.ShowProgress {
		opts.Indicator = progress.NewDisplay(progress.DetectTerminalCapabilities(os.Stderr), cmd.ErrOrStderr())
	}

	src, err := reader.GetInputSource(ctx, args, opts)
	switch {
	case errors.Is(err, reader.ErrNoInput):
		return input{}, errNoInput
	case errors.Is(err, reader.ErrFileNotFound):
		return input{}, clierrors.FileNotFound(file)
	case err != nil:
		return input{}, clierrors.Wrap(err, clierrors.Runtime)
	}

	in := input{source: src}
	if src.Kind == reader.KindArgs {
		in.format = formatArgs
		in.records = parser.ParseArgs(src.Tokens)
	} else {
		format, err := cfg.InputFormat()
		if err != nil {
			return input{}, clierrors.Wrap(err, clierrors.Argument)
		}

		res, err := parser.ParseAs(src.Text, format)
		switch {
		case errors.Is(err, parser.ErrEmptyInput):
			return input{}, errNoInput
		case errors.Is(err, parser.ErrStructure):
			return input{}, clierrors.NotAnArray(err)
		case errors.Is(err, parser.ErrInvalidFormat):
			return input{}, clierrors.InvalidJSONInput(err)
		case err != nil:
			return input{}, clierrors.Wrap(err, clierrors.Argument)
		}
		in.format = string(res.Format)
		in.records = res.Records
	}

	slog.Debug("parsed input",
		"origin", src.Origin,
		"path", src.Path,
		"format", in.format,
		"records", len(in.records))
	return in, nil
}

// isInteractive reports whether r is a terminal, meaning nothing is piped.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && progress.IsTerminal(f)
}

// usageError prints the command usage to stderr and exits with
// ExitInvalidArguments.
func usageError(cmd *cobra.Command) error {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return shared.NewExitError(shared.ExitInvalidArguments)
}
