package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo configuration file
# Values can be overridden by environment variables or CLI flags

# Task store (supports ~ expansion and %VAR% on Windows).
# Relative paths are resolved against the working directory.
# Defaults to tasks.json in the OS data directory.
# store_file = "~/notes/tasks.json"

# Colored output: auto, always or never
color = "auto"

# Diagnostics written to stderr
log_level = "warn"     # debug, info, warn or error
log_format = "text"    # text, json or logfmt
log_timestamps = false

# How long to wait for another todo process to release the store
lock_timeout_ms = 2000
`
}
