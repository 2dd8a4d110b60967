package config

import (
	"time"
)

// LockTimeout returns how long to wait for the store lock.
func (c *Config) LockTimeout() time.Duration {
	if c.LockTimeoutMS <= 0 {
		return time.Duration(DefaultLockTimeoutMS) * time.Millisecond
	}
	return time.Duration(c.LockTimeoutMS) * time.Millisecond
}

// Source returns where the value of key came from.
func (c *Config) Source(key string) ConfigSource {
	if src, ok := c.Sources[key]; ok {
		return src
	}
	return SourceDefault
}

// Value returns the effective value of key formatted for display.
func (c *Config) Value(key string) string {
	switch key {
	case "store_file":
		return c.StoreFile
	case "color":
		return c.Color
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		if c.LogTimestamps {
			return "true"
		}
		return "false"
	case "lock_timeout_ms":
		return c.LockTimeout().String()
	default:
		return ""
	}
}
