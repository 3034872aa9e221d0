// Package reader decides where chart data comes from (positional arguments,
// a file or piped stdin) and reads it.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Kind selects how a Source is parsed: token by token or as one body.
type Kind string

const (
	KindArgs Kind = "args"
	KindText Kind = "text"
)

// Origin records where text came from.
type Origin string

const (
	OriginArgs  Origin = "args"
	OriginStdin Origin = "stdin"
	OriginFile  Origin = "file"
)

var (
	// ErrNoInput means there were no arguments, no file and no piped stdin.
	ErrNoInput = errors.New("no input provided")
	// ErrFileNotFound means an explicit file path does not exist.
	ErrFileNotFound = errors.New("file not found")
)

// Source is the resolved input. Tokens is set for KindArgs, Text for KindText.
type Source struct {
	Kind   Kind
	Origin Origin
	Path   string
	Tokens []string
	Text   string
}

// Indicator is shown while blocking on stdin.
type Indicator interface {
	Start(msg string)
	Stop()
}

// Options configure GetInputSource. A nil Stdin means os.Stdin.
type Options struct {
	// File is an explicit --file path; it wins over everything else.
	File string
	// Stdin is read when there are no arguments and it is not interactive.
	Stdin io.Reader
	// Interactive reports that stdin is a terminal, so nothing is piped.
	Interactive bool
	// Indicator, if set, runs while stdin is read.
	Indicator Indicator
}

// GetInputSource resolves the input in priority order: an explicit file,
// the first positional argument naming an existing file, the remaining
// positional arguments, then piped stdin.
func GetInputSource(ctx context.Context, args []string, opts Options) (Source, error) {
	if opts.File != "" {
		return fileSource(opts.File)
	}

	files, data := SeparateArgs(args)
	if len(files) > 0 {
		return fileSource(files[0])
	}

	if len(data) > 0 {
		return Source{Kind: KindArgs, Origin: OriginArgs, Tokens: data}, nil
	}

	if opts.Interactive {
		return Source{}, ErrNoInput
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	if opts.Indicator != nil {
		opts.Indicator.Start("Reading data from stdin")
		defer opts.Indicator.Stop()
	}

	text, err := ReadAll(ctx, stdin)
	if err != nil {
		return Source{}, fmt.Errorf("reading stdin: %w", err)
	}
	return Source{Kind: KindText, Origin: OriginStdin, Text: text}, nil
}

func fileSource(path string) (Source, error) {
	text, resolved, err := ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	return Source{Kind: KindText, Origin: OriginFile, Path: resolved, Text: text}, nil
}

// ReadFile reads path, returning its contents and absolute path. A missing
// file yields ErrFileNotFound naming the absolute path.
func ReadFile(path string) (string, string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("resolving %s: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", resolved, fmt.Errorf("%w: %s", ErrFileNotFound, resolved)
		}
		return "", resolved, fmt.Errorf("reading %s: %w", resolved, err)
	}
	return string(data), resolved, nil
}

// IsFilePath reports whether arg names an existing regular file.
func IsFilePath(arg string) bool {
	info, err := os.Stat(arg)
	return err == nil && info.Mode().IsRegular()
}

// SeparateArgs splits positional arguments into existing file paths and data
// tokens, keeping the order of each.
func SeparateArgs(args []string) (files, data []string) {
	for _, arg := range args {
		if IsFilePath(arg) {
			files = append(files, arg)
		} else {
			data = append(data, arg)
		}
	}
	return files, data
}

// ReadAll reads r to EOF, giving up when ctx is done. On cancellation the
// read is abandoned, not interrupted.
func ReadAll(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}

	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return string(res.data), res.err
	}
}
