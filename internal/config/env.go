package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Environment variables.
const (
	EnvConfig      = "TODO_CONFIG"
	EnvFile        = "TODO_FILE"
	EnvColor       = "TODO_COLOR"
	EnvNoColor     = "NO_COLOR"
	EnvLogLevel    = "TODO_LOG_LEVEL"
	EnvLogFormat   = "TODO_LOG_FORMAT"
	EnvLogTime     = "TODO_LOG_TIMESTAMPS"
	EnvLockTimeout = "TODO_LOCK_TIMEOUT_MS"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	set := func(field string) {
		cfg.Sources[field] = SourceEnv
	}

	// https://no-color.org: any non-empty value disables color
	if v := os.Getenv(EnvNoColor); v != "" {
		cfg.Color = ColorNever
		set("color")
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = v
		set("color")
	}
	if v := os.Getenv(EnvFile); v != "" {
		cfg.StoreFile = v
		set("store_file")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv(EnvLogTime); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv(EnvLockTimeout); v != "" {
		ms, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || ms <= 0 {
			log.Warn("ignoring invalid lock timeout", "env", EnvLockTimeout, "value", v)
		} else {
			cfg.LockTimeoutMS = ms
			set("lock_timeout_ms")
		}
	}
}

// boolFromString parses common truthy strings.
func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
