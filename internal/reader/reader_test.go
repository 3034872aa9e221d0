package reader

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIndicator struct {
	started []string
	stopped int
}

func (r *recordingIndicator) Start(msg string) { r.started = append(r.started, msg) }
func (r *recordingIndicator) Stop()            { r.stopped++ }

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetInputSource(t *testing.T) {
	jsonPath := tempFile(t, "data.json", "[1, 2, 3]")
	csvPath := tempFile(t, "data.csv", "a,1\nb,2")
	dir := t.TempDir()

	tests := map[string]struct {
		args    []string
		opts    Options
		want    Source
		wantErr error
	}{
		"numbers as args": {
			args: []string{"1", "2", "3"},
			opts: Options{Interactive: true},
			want: Source{Kind: KindArgs, Origin: OriginArgs, Tokens: []string{"1", "2", "3"}},
		},
		"explicit file wins over args": {
			args: []string{"1", "2"},
			opts: Options{File: csvPath},
			want: Source{Kind: KindText, Origin: OriginFile, Path: csvPath, Text: "a,1\nb,2"},
		},
		"first file argument wins": {
			args: []string{"9", jsonPath, csvPath},
			want: Source{Kind: KindText, Origin: OriginFile, Path: jsonPath, Text: "[1, 2, 3]"},
		},
		"directories are data": {
			args: []string{dir},
			opts: Options{Interactive: true},
			want: Source{Kind: KindArgs, Origin: OriginArgs, Tokens: []string{dir}},
		},
		"piped stdin": {
			opts: Options{Stdin: strings.NewReader("CPU 45\nMEM 30\n")},
			want: Source{Kind: KindText, Origin: OriginStdin, Text: "CPU 45\nMEM 30\n"},
		},
		"args win over stdin": {
			args: []string{"value: 3"},
			opts: Options{Stdin: strings.NewReader("ignored")},
			want: Source{Kind: KindArgs, Origin: OriginArgs, Tokens: []string{"value: 3"}},
		},
		"nothing to read": {
			opts:    Options{Interactive: true},
			wantErr: ErrNoInput,
		},
		"missing explicit file": {
			opts:    Options{File: filepath.Join(dir, "missing.json")},
			wantErr: ErrFileNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := GetInputSource(context.Background(), tt.args, tt.opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInputSource_MissingFileNamesAbsolutePath(t *testing.T) {
	t.Parallel()

	_, err := GetInputSource(context.Background(), nil, Options{File: "surely-missing.json"})
	require.ErrorIs(t, err, ErrFileNotFound)

	abs, absErr := filepath.Abs("surely-missing.json")
	require.NoError(t, absErr)
	assert.Contains(t, err.Error(), abs)
}

func TestGetInputSource_IndicatorWrapsStdinRead(t *testing.T) {
	t.Parallel()

	ind := &recordingIndicator{}
	_, err := GetInputSource(context.Background(), nil, Options{
		Stdin:     strings.NewReader("1 2"),
		Indicator: ind,
	})
	require.NoError(t, err)
	assert.Len(t, ind.started, 1)
	assert.Equal(t, 1, ind.stopped)

	ind = &recordingIndicator{}
	_, err = GetInputSource(context.Background(), []string{"1"}, Options{Indicator: ind})
	require.NoError(t, err)
	assert.Empty(t, ind.started, "no spinner without a stdin read")
}

func TestReadAll_Cancelled(t *testing.T) {
	t.Parallel()

	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := ReadAll(ctx, r)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReadAll_ReaderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r, w := io.Pipe()
	go w.CloseWithError(boom)

	_, err := ReadAll(context.Background(), r)
	require.ErrorIs(t, err, boom)
}

func TestSeparateArgs(t *testing.T) {
	t.Parallel()

	path := tempFile(t, "x.txt", "1")
	files, data := SeparateArgs([]string{"1", path, "label: a, value: 2"})
	assert.Equal(t, []string{path}, files)
	assert.Equal(t, []string{"1", "label: a, value: 2"}, data)

	files, data = SeparateArgs(nil)
	assert.Nil(t, files)
	assert.Nil(t, data)
}
