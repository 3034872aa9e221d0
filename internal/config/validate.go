package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("dimension", func(fl validator.FieldLevel) bool {
			return validDimension(fl.Field().String())
		})
	})
	return validate
}

// validDimension accepts "auto" or a positive integer.
func validDimension(s string) bool {
	if s == AutoDimension {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

// ValidateConfigValues validates configuration values against expected types and constraints.
// Returns nil if valid, or a ValidationError naming the first offending field.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	err := structValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		FilePath: filePath,
		Field:    fe.Field(),
		Message:  describe(fe),
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "dimension":
		return fmt.Sprintf("must be a positive integer or %q", AutoDimension)
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
