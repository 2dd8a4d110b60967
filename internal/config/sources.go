package config

import (
	"os"
	"path/filepath"

	"github.com/nibzard/todo-go/internal/datadir"
)

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	names := []string{datadir.ProjectConfigFile, datadir.DefaultConfigFile}
	for _, name := range names {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.todo/todo.toml first, then falls back to the OS-specific
// config directory.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, datadir.LegacyDir, datadir.DefaultConfigFile)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	if cfgDir, err := datadir.ConfigDir(); err == nil {
		userConfigPath := filepath.Join(cfgDir, datadir.DefaultConfigFile)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.StoreFile = ""
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LockTimeoutMS = DefaultLockTimeoutMS

	cfg.Sources = make(map[string]ConfigSource)
	for _, field := range configFields() {
		cfg.Sources[field] = SourceDefault
	}
}
