package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartscii/chartscii-go/internal/testutil"
)

// Commands share fatih/color's global NoColor and the default slog logger,
// so these tests run sequentially.

type result struct {
	stdout string
	stderr string
	err    error
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "chartscii [data...]",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupOutput,
		RunE:              runChart,
	}
	addGlobalFlags(cmd)
	addChartFlags(cmd)
	return cmd
}

// execute runs cmd with --no-color and returns what it wrote.
func execute(cmd *cobra.Command, stdin string, args ...string) result {
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRunChart_MissingConfigFile(t *testing.T) {
	dir := testutil.IsolateConfig(t)

	res := execute(newChartCmd(), "", "--config", filepath.Join(dir, "missing.json"), "1", "2", "3")
	require.Error(t, res.err)
	assert.Equal(t, ExitConfiguration, ExitCode(res.err))
	assert.Empty(t, res.stdout)
}

func TestRunChart_Output(t *testing.T) {
	bar := func(n int) string { return strings.Repeat("█", n) }

	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"positional numbers": {
			args: []string{"1", "2", "3"},
			want: "1 ╢" + bar(26) + "\n" +
				"2 ╢" + bar(51) + "\n" +
				"3 ╢" + bar(77) + "\n" +
				"  ╚" + strings.Repeat("═", 77) + "\n",
		},
		"piped json": {
			stdin: `[{"label": "a", "value": 1}, {"label": "b", "value": 2}]`,
			args:  []string{"-w", "20"},
			want: "a ╢" + bar(9) + "\n" +
				"b ╢" + bar(17) + "\n" +
				"  ╚" + strings.Repeat("═", 17) + "\n",
		},
		"naked unsorted": {
			args: []string{"-n", "--sort=false", "-w", "12", "-l=false", "2", "1"},
			want: bar(12) + "\n" + bar(6) + "\n",
		},
		"title and reverse": {
			args: []string{"-t", "T", "-r", "-w", "14", "1", "2"},
			want: "T\n" +
				"2 ╢" + bar(11) + "\n" +
				"1 ╢" + bar(6) + "\n" +
				"  ╚" + strings.Repeat("═", 11) + "\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := testutil.WriteConfig(t, testutil.IsolateConfig(t), "chart.json", `{}`)

			res := execute(newChartCmd(), tt.stdin, append([]string{"--config", configPath}, tt.args...)...)
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestRunChart_RowsFitWidth(t *testing.T) {
	testutil.IsolateConfig(t)

	res := execute(newChartCmd(), "apples 10\npears 25\nfigs 7\n", "-w", "40", "--value-labels")
	require.NoError(t, res.err, res.stderr)

	lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 40, line)
	}
}

func TestRunChart_Errors(t *testing.T) {
	tests := map[string]struct {
		stdin      string
		args       []string
		wantCode   int
		wantStderr string
	}{
		"empty stdin shows usage": {
			stdin:      "   \n",
			wantCode:   ExitInvalidArguments,
			wantStderr: "Usage:",
		},
		"no numbers": {
			args:     []string{"foo", "bar"},
			wantCode: ExitInvalidArguments,
		},
		"forced json on text": {
			stdin:    "1 2 3",
			args:     []string{"--format", "json"},
			wantCode: ExitInvalidArguments,
		},
		"json object": {
			stdin:    `{"value": 1}`,
			args:     []string{"--format", "json"},
			wantCode: ExitInvalidArguments,
		},
		"missing file": {
			args:     []string{"-f", "does-not-exist.json"},
			wantCode: ExitInvalidArguments,
		},
		"bad orientation flag": {
			args:     []string{"-e", "diagonal", "1"},
			wantCode: ExitInvalidArguments,
		},
		"bad width flag": {
			args:     []string{"-w", "wide", "1"},
			wantCode: ExitInvalidArguments,
		},
		"zero bar size": {
			args:     []string{"-b", "0", "1"},
			wantCode: ExitInvalidArguments,
		},
		"unknown flag": {
			args:     []string{"--colour", "red", "1"},
			wantCode: ExitInvalidArguments,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.IsolateConfig(t)
			cmd := newChartCmd()
			cmd.SetFlagErrorFunc(rootCmd.FlagErrorFunc())

			res := execute(cmd, tt.stdin, tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, tt.wantCode, ExitCode(res.err), res.err.Error())
			assert.Empty(t, res.stdout)
			if tt.wantStderr != "" {
				assert.Contains(t, res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunChart_ConfigFile(t *testing.T) {
	tests := map[string]struct {
		config   string
		args     []string
		wantCode int
		want     string
	}{
		"config sets structure": {
			config: `{"width": "14", "structure": {"x": "-", "y": "|", "bottom_left": "+"}}`,
			args:   []string{"1", "2"},
			want:   "1 |" + strings.Repeat("█", 6) + "\n2 |" + strings.Repeat("█", 11) + "\n  +" + strings.Repeat("-", 11) + "\n",
		},
		"flag beats config": {
			config: `{"width": "80", "labels": false, "naked": true}`,
			args:   []string{"-w", "10", "4"},
			want:   strings.Repeat("█", 10) + "\n",
		},
		"invalid config": {
			config:   `{"orientation": "diagonal"}`,
			args:     []string{"1"},
			wantCode: ExitConfiguration,
		},
		"malformed config": {
			config:   `{"width": `,
			args:     []string{"1"},
			wantCode: ExitConfiguration,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := testutil.WriteConfig(t, testutil.IsolateConfig(t), "chart.json", tt.config)

			res := execute(newChartCmd(), "", append([]string{"--config", configPath}, tt.args...)...)
			if tt.wantCode != 0 {
				require.Error(t, res.err)
				assert.Equal(t, tt.wantCode, ExitCode(res.err))
				return
			}
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestRunChart_DebugLogging(t *testing.T) {
	testutil.IsolateConfig(t)

	res := execute(newChartCmd(), "", "--debug", "5", "10")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "parsed input")
	assert.Contains(t, res.stderr, "format=args")
	assert.Contains(t, res.stderr, "bar_area=")
}
