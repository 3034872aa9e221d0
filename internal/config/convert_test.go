package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartscii/chartscii-go/internal/layout"
	"github.com/chartscii/chartscii-go/internal/parser"
	"github.com/chartscii/chartscii-go/internal/testutil"
)

func TestResolveDimension(t *testing.T) {
	tests := map[string]struct {
		value    string
		fallback int
		want     int
		wantErr  bool
	}{
		"auto":     {value: "auto", fallback: 132, want: 132},
		"fixed":    {value: "40", fallback: 132, want: 40},
		"zero":     {value: "0", wantErr: true},
		"negative": {value: "-5", wantErr: true},
		"garbage":  {value: "wide", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDimension(tt.value, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfiguration_Budget(t *testing.T) {
	testutil.IsolateConfig(t)

	cfg, err := LoadWithOverrides("", map[string]any{
		"orientation": "vertical",
		"naked":       true,
		"bar_size":    2,
		"char":        "#",
	})
	require.NoError(t, err)

	b := cfg.Budget(60)
	assert.Equal(t, 60, b.Width)
	assert.Equal(t, layout.Vertical, b.Orientation)
	assert.True(t, b.Naked)
	assert.True(t, b.Labels)
	require.NotNil(t, b.BarSize)
	assert.Equal(t, 2, *b.BarSize)
	assert.Nil(t, b.Padding)
	assert.Equal(t, "#", b.Char)
	assert.Equal(t, 2, b.ValueLabelsFloatingPoint)
}

func TestConfiguration_ChartOptions(t *testing.T) {
	testutil.IsolateConfig(t)

	cfg, err := LoadWithOverrides("", map[string]any{
		"title":        "Disk",
		"color":        "auto",
		"stack_colors": []string{"red"},
		"reverse":      true,
	})
	require.NoError(t, err)

	opts := cfg.ChartOptions(42, 15, true)
	assert.Equal(t, "Disk", opts.Title)
	assert.Equal(t, 42, opts.Width)
	assert.Equal(t, 15, opts.Height)
	assert.Equal(t, "auto", opts.Color)
	assert.Equal(t, []string{"red"}, opts.StackColors)
	assert.True(t, opts.Reverse)
	assert.True(t, opts.Sort)
	assert.True(t, opts.NoColor)
	assert.Equal(t, cfg.Structure, opts.Structure)

	format, err := cfg.InputFormat()
	require.NoError(t, err)
	assert.Equal(t, parser.FormatAuto, format)
}
