package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/datadir"
	"github.com/nibzard/todo-go/internal/utils"
)

// ErrInvalidConfig is returned when a configuration value is not acceptable.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.todo/todo.toml or OS-specific config dir)
// 3. Project config file (.todo.toml or todo.toml in current directory)
// 4. Explicit config file (--config or TODO_CONFIG)
// 5. Environment variables
// 6. CLI flags
func Load(flags Flags) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. An explicitly named file must exist
	explicit := flags.ConfigFile
	if explicit == "" {
		explicit = os.Getenv(EnvConfig)
	}
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file %s: %w", explicit, err)
		}
		if err := loadConfigFile(cfg, explicit, SourceExplicit); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
	}

	// 5. Override from environment
	loadFromEnv(cfg)

	// 6. CLI flags override everything
	applyFlags(cfg, flags)

	// 7. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile decodes TOML config from path on top of cfg and records
// source for every key the file defines.
func loadConfigFile(cfg *Config, path string, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	for _, key := range md.Keys() {
		cfg.Sources[key.String()] = source
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown config key", "file", path, "key", key.String())
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

var (
	colorChoices  = []string{ColorAuto, ColorAlways, ColorNever}
	colorAliases  = map[string]string{"on": ColorAlways, "true": ColorAlways, "yes": ColorAlways, "off": ColorNever, "false": ColorNever, "no": ColorNever, "none": ColorNever}
	levelChoices  = []string{"debug", "info", "warn", "error"}
	levelAliases  = map[string]string{"warning": "warn"}
	formatChoices = []string{"text", "json", "logfmt"}
)

// finalizeConfig computes derived values and validates choices.
func finalizeConfig(cfg *Config) error {
	color, ok := utils.NormalizeChoice(cfg.Color, colorChoices, colorAliases)
	if !ok {
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalidConfig, cfg.Color)
	}
	cfg.Color = color

	level, ok := utils.NormalizeChoice(cfg.LogLevel, levelChoices, levelAliases)
	if !ok {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.LogLevel)
	}
	cfg.LogLevel = level

	format, ok := utils.NormalizeChoice(cfg.LogFormat, formatChoices, nil)
	if !ok {
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.LogFormat)
	}
	cfg.LogFormat = format

	if cfg.LockTimeoutMS <= 0 {
		return fmt.Errorf("%w: lock_timeout_ms must be positive, got %d", ErrInvalidConfig, cfg.LockTimeoutMS)
	}

	// Resolve the store path
	if cfg.StoreFile == "" {
		path, err := datadir.DefaultStorePath()
		if err != nil {
			return err
		}
		cfg.StoreFile = path
		return nil
	}
	cfg.StoreFile = expandPath(cfg.StoreFile)
	if !filepath.IsAbs(cfg.StoreFile) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.StoreFile = filepath.Join(wd, cfg.StoreFile)
	}
	return nil
}

// expandPath expands $VAR references and a leading ~ in a configured path.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
