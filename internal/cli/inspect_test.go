package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartscii/chartscii-go/internal/record"
	"github.com/chartscii/chartscii-go/internal/testutil"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "inspect [data...]",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupOutput,
		RunE:              runInspect,
	}
	addGlobalFlags(cmd)
	addInspectFlags(cmd)
	return cmd
}

func TestRunInspect(t *testing.T) {
	tests := map[string]struct {
		stdin string
		args  []string
		want  []string
	}{
		"du listing as bytes": {
			stdin: testutil.SampleDu,
			args:  []string{"--bytes"},
			want: []string{
				"Source:  stdin",
				"Format:  text",
				"Records: 2",
				"LABEL",
				"docs",
				"8.0 KiB",
				"44 MiB",
				"bar area 74",
				"Labels:  4 columns",
			},
		},
		"json array": {
			stdin: `[{"label": "JS", "value": [1200, 300]}, 5]`,
			want: []string{
				"Format:  json",
				"Records: 2",
				"stacked",
				"scalar",
				"1,500",
				"1,200 | 300",
			},
		},
		"positional args": {
			args: []string{"3", "label: 'x', value: 4"},
			want: []string{
				"Source:  args",
				"Format:  args",
				"labeled",
			},
		},
		"forced csv": {
			stdin: "a,1\nb,2",
			args:  []string{"--format", "csv"},
			want:  []string{"Format:  csv", "Records: 2"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.IsolateConfig(t)

			res := execute(newInspectCmd(), tt.stdin, tt.args...)
			require.NoError(t, res.err, res.stderr)
			for _, want := range tt.want {
				assert.Contains(t, res.stdout, want)
			}
		})
	}
}

func TestRunInspect_NoRecords(t *testing.T) {
	testutil.IsolateConfig(t)

	res := execute(newInspectCmd(), "", "foo")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Records: 0")
	assert.Contains(t, res.stdout, "No chartable records.")
}

func TestRunInspect_NoInput(t *testing.T) {
	testutil.IsolateConfig(t)

	res := execute(newInspectCmd(), "")
	require.Error(t, res.err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(res.err))
	assert.Contains(t, res.stderr, "Usage:")
}

func TestFormatValue(t *testing.T) {
	tests := map[string]struct {
		value   float64
		asBytes bool
		want    string
	}{
		"plain":          {value: 1234.5, want: "1,234.5"},
		"integer":        {value: 42, want: "42"},
		"bytes":          {value: 8192, asBytes: true, want: "8.0 KiB"},
		"negative bytes": {value: -3, asBytes: true, want: "-3"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatValue(tt.value, tt.asBytes))
		})
	}
}

func TestRecordTable(t *testing.T) {
	t.Parallel()

	out := recordTable([]record.Record{
		record.NewLabeled("cpu", 70),
		record.NewStacked("mem", []float64{10, 20}).WithColor("red"),
	}, false)

	assert.Contains(t, out, "cpu")
	assert.Contains(t, out, "10 | 20")
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "100")
}
