package config

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SetConfigValue sets a configuration value in a JSON config file.
// Validates the key and value against the schema before writing.
// Creates the file if it doesn't exist; other keys are preserved.
func SetConfigValue(filePath, key, value string) error {
	parsed, err := ValidateValue(key, value)
	if err != nil {
		return fmt.Errorf("validating value: %w", err)
	}

	k := koanf.New(".")
	if fileExists(filePath) {
		if err := k.Load(file.Provider(filePath), json.Parser()); err != nil {
			return fmt.Errorf("reading %s: %w", filePath, err)
		}
	}

	if err := k.Set(key, parsed.Parsed); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	raw, err := k.Marshal(json.Parser())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	var pretty bytes.Buffer
	if err := stdjson.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting config: %w", err)
	}
	pretty.WriteByte('\n')

	return writeAtomically(filePath, pretty.Bytes())
}

// writeAtomically writes content to a file atomically using a temporary file and rename.
// Creates parent directories if they don't exist.
func writeAtomically(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmpFile, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	tmpPath = ""
	return nil
}
