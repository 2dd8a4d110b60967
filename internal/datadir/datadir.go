// Package datadir resolves the directories todo keeps its data and config in.
package datadir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the directory name used under the OS data and config roots.
	AppName = "todo"

	// DefaultStoreFile is the task store file name inside the data directory.
	DefaultStoreFile = "tasks.json"

	// DefaultConfigFile is the user config file name inside the config directory.
	DefaultConfigFile = "todo.toml"

	// ProjectConfigFile is the config file looked up in the working directory.
	ProjectConfigFile = ".todo.toml"

	// LegacyDir is the dot directory in the home directory checked before the
	// OS-specific config directory.
	LegacyDir = ".todo"

	// EnvDataDir overrides the data directory.
	EnvDataDir = "TODO_DATA_DIR"
)

// ErrEnvironmentUnavailable is returned when no data or config directory can be
// determined for the current user.
var ErrEnvironmentUnavailable = errors.New("no usable data directory")

// DataDir returns the directory the task store lives in.
//
//   - $TODO_DATA_DIR when set
//   - Windows: %APPDATA%\todo
//   - macOS: ~/Library/Application Support/todo
//   - Linux/BSD: $XDG_DATA_HOME/todo or ~/.local/share/todo
func DataDir() (string, error) {
	if v := os.Getenv(EnvDataDir); v != "" {
		return filepath.Clean(v), nil
	}
	root, err := osDataRoot(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppName), nil
}

// ConfigDir returns the OS-specific user config directory for todo.
func ConfigDir() (string, error) {
	root, err := osConfigRoot(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppName), nil
}

// StorePath returns the full path of the task store within dir.
func StorePath(dir string) string {
	if dir == "" {
		return DefaultStoreFile
	}
	return filepath.Join(dir, DefaultStoreFile)
}

// DefaultStorePath returns the task store path inside DataDir.
func DefaultStorePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return StorePath(dir), nil
}

// Ensure creates dir and its parents if missing.
func Ensure(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrEnvironmentUnavailable, dir, err)
	}
	return nil
}

func osDataRoot(goos string) (string, error) {
	switch goos {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata, nil
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support"), nil
		}
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".local", "share"), nil
		}
	}
	return "", fmt.Errorf("%w: cannot determine data root for %s", ErrEnvironmentUnavailable, goos)
}

func osConfigRoot(goos string) (string, error) {
	switch goos {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata, nil
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support"), nil
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config"), nil
		}
	}
	return "", fmt.Errorf("%w: cannot determine config root for %s", ErrEnvironmentUnavailable, goos)
}
