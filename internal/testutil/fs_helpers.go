// Package testutil provides test utilities and helpers for chartscii tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Sample inputs in each format the parser detects.
const (
	SampleJSON = `[{"label": "cpu", "value": 70}, {"label": "mem", "value": 40}]`
	SampleCSV  = "cpu,70\nmem,40\n"
	SampleText = "cpu 70\nmem 40\n"
	SampleDu   = "8.0K\tdocs\n44M\tsrc\n"
)

// envPrefix matches internal/config.EnvPrefix without importing it.
const envPrefix = "CHARTSCII_"

// IsolateConfig points the user config directory and HOME at a fresh temp
// directory and clears CHARTSCII_* variables, so a developer's own settings
// cannot leak into a test. Returns the temp directory. Tests using it must
// not call t.Parallel.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	ClearEnv(t)
	return dir
}

// ClearEnv unsets every CHARTSCII_* variable for the duration of the test.
func ClearEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		// Setenv registers the restore; Unsetenv then removes the variable.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// WriteConfig writes a JSON config file named name into dir and returns its path.
func WriteConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, content)
	return path
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}
