// Package config loads chartscii settings from defaults, the user and project
// config files, CHARTSCII_* environment variables and explicit overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/chartscii/chartscii-go/internal/chart"
)

// EnvPrefix prefixes every environment override, e.g. CHARTSCII_WIDTH=100.
const EnvPrefix = "CHARTSCII_"

// AutoDimension asks for the terminal's size instead of a fixed one.
const AutoDimension = "auto"

// Configuration is the effective chart configuration. Width and Height hold
// a positive integer or "auto".
type Configuration struct {
	Title                    string          `koanf:"title" yaml:"title"`
	Format                   string          `koanf:"format" yaml:"format" validate:"oneof=auto json csv text"`
	Orientation              string          `koanf:"orientation" yaml:"orientation" validate:"oneof=horizontal vertical"`
	Width                    string          `koanf:"width" yaml:"width" validate:"dimension"`
	Height                   string          `koanf:"height" yaml:"height" validate:"dimension"`
	BarSize                  *int            `koanf:"bar_size" yaml:"bar_size,omitempty" validate:"omitempty,min=1"`
	Padding                  *int            `koanf:"padding" yaml:"padding,omitempty" validate:"omitempty,min=0"`
	Labels                   bool            `koanf:"labels" yaml:"labels"`
	ColorLabels              bool            `koanf:"color_labels" yaml:"color_labels"`
	Percentage               bool            `koanf:"percentage" yaml:"percentage"`
	ValueLabels              bool            `koanf:"value_labels" yaml:"value_labels"`
	ValueLabelsPrefix        string          `koanf:"value_labels_prefix" yaml:"value_labels_prefix"`
	ValueLabelsFloatingPoint int             `koanf:"value_labels_floating_point" yaml:"value_labels_floating_point" validate:"min=0,max=10"`
	Sort                     bool            `koanf:"sort" yaml:"sort"`
	Reverse                  bool            `koanf:"reverse" yaml:"reverse"`
	Naked                    bool            `koanf:"naked" yaml:"naked"`
	Char                     string          `koanf:"char" yaml:"char" validate:"required"`
	Fill                     string          `koanf:"fill" yaml:"fill"`
	Color                    string          `koanf:"color" yaml:"color"`
	Theme                    string          `koanf:"theme" yaml:"theme"`
	StackColors              []string        `koanf:"stack_colors" yaml:"stack_colors"`
	MaxValue                 *float64        `koanf:"max_value" yaml:"max_value,omitempty" validate:"omitempty,gt=0"`
	Structure                chart.Structure `koanf:"structure" yaml:"structure"`
	ShowProgress             bool            `koanf:"show_progress" yaml:"show_progress"` // Spinner while waiting on stdin
}

// Load reads configuration without CLI overrides.
func Load(localConfigPath string) (*Configuration, error) {
	return LoadWithOverrides(localConfigPath, nil)
}

// LoadWithOverrides layers, lowest first: defaults, the user config file, the
// local config file, CHARTSCII_* environment variables and overrides, which
// are keyed like the config file (e.g. "structure.x").
func LoadWithOverrides(localConfigPath string, overrides map[string]any) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if globalPath, err := UserConfigPath(); err == nil && fileExists(globalPath) {
		if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	if localConfigPath != "" && fileExists(localConfigPath) {
		if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalize()

	if err := ValidateConfigValues(&cfg, sourceName(localConfigPath)); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform maps CHARTSCII_VALUE_LABELS to value_labels and
// CHARTSCII_STRUCTURE_BOTTOM_LEFT to structure.bottom_left. Stack colours are
// comma separated.
func envTransform(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "structure_"); ok {
		key = "structure." + rest
	}
	if key == "stack_colors" {
		return key, splitList(value)
	}
	return key, value
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Configuration) normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Orientation = strings.ToLower(strings.TrimSpace(c.Orientation))
	c.Width = strings.ToLower(strings.TrimSpace(c.Width))
	c.Height = strings.ToLower(strings.TrimSpace(c.Height))
}

func sourceName(localConfigPath string) string {
	if localConfigPath == "" {
		return "configuration"
	}
	return localConfigPath
}
