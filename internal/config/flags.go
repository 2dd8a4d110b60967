package config

// Flags holds the global options given on the command line. An empty string
// means the flag was not set.
type Flags struct {
	ConfigFile string
	StoreFile  string
	Color      string
	LogLevel   string
	LogFormat  string
}

// applyFlags overrides config from CLI flags.
func applyFlags(cfg *Config, flags Flags) {
	apply := func(target *string, value, field string) {
		if value == "" {
			return
		}
		*target = value
		cfg.Sources[field] = SourceFlag
	}

	apply(&cfg.StoreFile, flags.StoreFile, "store_file")
	apply(&cfg.Color, flags.Color, "color")
	apply(&cfg.LogLevel, flags.LogLevel, "log_level")
	apply(&cfg.LogFormat, flags.LogFormat, "log_format")
}
