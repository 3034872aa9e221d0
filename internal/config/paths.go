package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "chartscii"
	configFileName = "config.json"
	// ProjectConfigFile is the config file read from the working directory.
	ProjectConfigFile = ".chartscii.json"
)

// UserConfigDir returns the per-user configuration directory, honouring
// XDG_CONFIG_HOME.
func UserConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

// UserConfigPath returns the global config file path.
func UserConfigPath() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// ProjectConfigPath returns the local config file path relative to the
// working directory.
func ProjectConfigPath() string {
	return ProjectConfigFile
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
