package config

import "github.com/chartscii/chartscii-go/internal/layout"

// GetDefaults returns the default configuration values. bar_size, padding and
// max_value are absent so the renderer chooses them.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"title":                       "",
		"format":                      "auto",
		"orientation":                 string(layout.Horizontal),
		"width":                       "80",
		"height":                      "20",
		"labels":                      true,
		"color_labels":                true,
		"percentage":                  false,
		"value_labels":                false,
		"value_labels_prefix":         "",
		"value_labels_floating_point": layout.DefaultFloatingPoint,
		"sort":                        true,
		"reverse":                     false,
		"naked":                       false,
		"char":                        layout.DefaultChar,
		"fill":                        "",
		"color":                       "",
		"theme":                       "",
		"stack_colors":                []string{},
		"show_progress":               true,
		"structure.x":                 "═",
		"structure.y":                 "╢",
		"structure.axis":              "║",
		"structure.top_left":          "╔",
		"structure.bottom_left":       "╚",
	}
}
