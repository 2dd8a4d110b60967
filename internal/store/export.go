package store

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/nibzard/todo-go/internal/todo"
)

// Format is an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json|yaml|toml)", s)
	}
}

// tomlDocument wraps the list because TOML has no top-level arrays.
type tomlDocument struct {
	Tasks todo.Tasks `toml:"tasks"`
}

// Export writes tasks to w in the given format.
func Export(w io.Writer, tasks todo.Tasks, format Format) error {
	tasks = tasks.Normalize()

	switch format {
	case FormatJSON:
		data, err := Encode(tasks)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(tomlDocument{Tasks: tasks}); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
