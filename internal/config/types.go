package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceExplicit ConfigSource = "config file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Default values.
const (
	DefaultColor         = ColorAuto
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultLockTimeoutMS = 2000
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the full configuration for todo.
type Config struct {
	// StoreFile is the task store path. Empty means the OS data directory.
	StoreFile string `toml:"store_file"`

	// Output
	Color string `toml:"color"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// How long to wait for another invocation to release the store
	LockTimeoutMS int `toml:"lock_timeout_ms"`

	// Files that were read, in load order (computed)
	Files []string `toml:"-"`

	// Sources maps each config key to where its value came from (computed)
	Sources map[string]ConfigSource `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"store_file",
		"color",
		"log_level",
		"log_format",
		"log_timestamps",
		"lock_timeout_ms",
	}
}

// Fields returns the configurable keys in display order.
func Fields() []string {
	return configFields()
}
