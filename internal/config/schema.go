package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/chartscii/chartscii-go/internal/layout"
	"github.com/chartscii/chartscii-go/internal/parser"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeInt
	TypeFloat
	TypeString
	TypeEnum
	TypeDimension
	TypeList
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	case TypeDimension:
		return "dimension"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // Dotted key path (e.g., "structure.x")
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"title":                       {Path: "title", Type: TypeString, Description: "Chart title"},
	"format":                      {Path: "format", Type: TypeEnum, AllowedValues: parser.ValidFormatNames(), Description: "Input format"},
	"orientation":                 {Path: "orientation", Type: TypeEnum, AllowedValues: []string{string(layout.Horizontal), string(layout.Vertical)}, Description: "Direction bars grow in"},
	"width":                       {Path: "width", Type: TypeDimension, Description: "Total chart width in columns, or auto"},
	"height":                      {Path: "height", Type: TypeDimension, Description: "Vertical chart height in rows, or auto"},
	"bar_size":                    {Path: "bar_size", Type: TypeInt, Description: "Bar thickness (automatic when unset)"},
	"padding":                     {Path: "padding", Type: TypeInt, Description: "Space between bars (automatic when unset)"},
	"labels":                      {Path: "labels", Type: TypeBool, Description: "Show labels"},
	"color_labels":                {Path: "color_labels", Type: TypeBool, Description: "Colour labels like their bars"},
	"percentage":                  {Path: "percentage", Type: TypeBool, Description: "Show each bar's share of the total"},
	"value_labels":                {Path: "value_labels", Type: TypeBool, Description: "Print values after bars"},
	"value_labels_prefix":         {Path: "value_labels_prefix", Type: TypeString, Description: "Text before each value label"},
	"value_labels_floating_point": {Path: "value_labels_floating_point", Type: TypeInt, Description: "Decimal places in value labels"},
	"sort":                        {Path: "sort", Type: TypeBool, Description: "Sort bars by value"},
	"reverse":                     {Path: "reverse", Type: TypeBool, Description: "Reverse bar order"},
	"naked":                       {Path: "naked", Type: TypeBool, Description: "Hide axis and border"},
	"char":                        {Path: "char", Type: TypeString, Description: "Bar glyph"},
	"fill":                        {Path: "fill", Type: TypeString, Description: "Glyph for the empty part of the bar area"},
	"color":                       {Path: "color", Type: TypeString, Description: "Bar colour: a name, #rrggbb, an ANSI index or auto"},
	"theme":                       {Path: "theme", Type: TypeString, Description: "Colour theme"},
	"stack_colors":                {Path: "stack_colors", Type: TypeList, Description: "Comma separated colours for stacked segments"},
	"max_value":                   {Path: "max_value", Type: TypeFloat, Description: "Value of a full-length bar"},
	"show_progress":               {Path: "show_progress", Type: TypeBool, Description: "Show a spinner while waiting for stdin"},
	"structure.x":                 {Path: "structure.x", Type: TypeString, Description: "Bottom border glyph"},
	"structure.y":                 {Path: "structure.y", Type: TypeString, Description: "Axis glyph on bar rows"},
	"structure.axis":              {Path: "structure.axis", Type: TypeString, Description: "Axis glyph"},
	"structure.top_left":          {Path: "structure.top_left", Type: TypeString, Description: "Top-left corner glyph"},
	"structure.bottom_left":       {Path: "structure.bottom_left", Type: TypeString, Description: "Bottom-left corner glyph"},
}

// SortedKeys returns every known key in lexical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// ParsedValue represents a configuration value after type inference and validation.
type ParsedValue struct {
	Raw    string      // Original string input from user
	Parsed interface{} // Value converted to correct type
	Type   ConfigValueType
}

// ValidateValue validates a value against the schema for a given key.
// Returns the parsed value or an error with details about what's wrong.
func ValidateValue(key, value string) (ParsedValue, error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return ParsedValue{}, err
	}
	return validateAgainstSchema(schema, value)
}

func validateAgainstSchema(schema ConfigKeySchema, value string) (ParsedValue, error) {
	switch schema.Type {
	case TypeBool:
		b, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return ParsedValue{}, fmt.Errorf("invalid boolean: %q (expected true or false)", value)
		}
		return ParsedValue{Raw: value, Parsed: b, Type: TypeBool}, nil
	case TypeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return ParsedValue{}, fmt.Errorf("invalid integer: %q", value)
		}
		return ParsedValue{Raw: value, Parsed: n, Type: TypeInt}, nil
	case TypeFloat:
		f, ok := parser.ParseNumber(value)
		if !ok {
			return ParsedValue{}, fmt.Errorf("invalid number: %q", value)
		}
		return ParsedValue{Raw: value, Parsed: f, Type: TypeFloat}, nil
	case TypeDimension:
		v := strings.ToLower(strings.TrimSpace(value))
		if !validDimension(v) {
			return ParsedValue{}, fmt.Errorf("invalid dimension: %q (expected a positive integer or %s)", value, AutoDimension)
		}
		return ParsedValue{Raw: value, Parsed: v, Type: TypeDimension}, nil
	case TypeEnum:
		if slices.Contains(schema.AllowedValues, value) {
			return ParsedValue{Raw: value, Parsed: value, Type: TypeEnum}, nil
		}
		return ParsedValue{}, fmt.Errorf(
			"invalid value: %q (valid options: %s)",
			value,
			strings.Join(schema.AllowedValues, ", "),
		)
	case TypeList:
		return ParsedValue{Raw: value, Parsed: splitList(value), Type: TypeList}, nil
	case TypeString:
		return ParsedValue{Raw: value, Parsed: value, Type: TypeString}, nil
	default:
		return ParsedValue{}, fmt.Errorf("unsupported type: %v", schema.Type)
	}
}
