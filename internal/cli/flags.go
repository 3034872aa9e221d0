package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// flagKeys maps chart flags to the configuration keys they override.
var flagKeys = map[string]string{
	"format":                      "format",
	"title":                       "title",
	"labels":                      "labels",
	"color-labels":                "color_labels",
	"percentage":                  "percentage",
	"orientation":                 "orientation",
	"width":                       "width",
	"height":                      "height",
	"bar-size":                    "bar_size",
	"padding":                     "padding",
	"color":                       "color",
	"theme":                       "theme",
	"char":                        "char",
	"fill":                        "fill",
	"sort":                        "sort",
	"reverse":                     "reverse",
	"naked":                       "naked",
	"structure-x":                 "structure.x",
	"structure-y":                 "structure.y",
	"structure-axis":              "structure.axis",
	"structure-bottom-left":       "structure.bottom_left",
	"value-labels":                "value_labels",
	"value-labels-prefix":         "value_labels_prefix",
	"value-labels-floating-point": "value_labels_floating_point",
	"stack-colors":                "stack_colors",
	"max-value":                   "max_value",
	"progress":                    "show_progress",
}

// flagForKey returns the flag that overrides a configuration key.
func flagForKey(key string) (string, bool) {
	for flag, k := range flagKeys {
		if k == key {
			return flag, true
		}
	}
	return "", false
}

// overridesFromFlags returns the configuration overrides for every flag the
// user set explicitly. Flags left at their defaults do not shadow config
// files or the environment.
func overridesFromFlags(flags *pflag.FlagSet) (map[string]any, error) {
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}

		var (
			value any
			err   error
		)
		switch f.Value.Type() {
		case "bool":
			value, err = flags.GetBool(name)
		case "int":
			value, err = flags.GetInt(name)
		case "float64":
			value, err = flags.GetFloat64(name)
		case "stringSlice":
			value, err = flags.GetStringSlice(name)
		default:
			value = f.Value.String()
		}
		if err != nil {
			return nil, fmt.Errorf("reading --%s: %w", name, err)
		}
		overrides[key] = value
	}
	return overrides, nil
}
