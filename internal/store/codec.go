package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/todo"
)

// Store errors.
var (
	// ErrStoreUnreadable indicates the store file exists but does not parse.
	ErrStoreUnreadable = errors.New("task store is unreadable")

	// ErrStoreUnwritable indicates the store file could not be written.
	ErrStoreUnwritable = errors.New("task store is unwritable")

	// ErrLocked indicates the store lock was not acquired in time.
	ErrLocked = errors.New("task store is locked by another process")
)

// UnreadableError reports a store file that could not be parsed.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns both ErrStoreUnreadable and the parse error.
func (e *UnreadableError) Unwrap() []error {
	return []error{ErrStoreUnreadable, e.Err}
}

// Decode parses store bytes. A JSON null decodes to an empty list.
func Decode(data []byte) (todo.Tasks, error) {
	var tasks todo.Tasks
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	return tasks.Normalize(), nil
}

// Encode renders tasks as an indented JSON array with a trailing newline.
func Encode(tasks todo.Tasks) ([]byte, error) {
	data, err := json.MarshalIndent(tasks.Normalize(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// LoadStrict reads and parses the store at path. A missing file returns an
// error matching fs.ErrNotExist; a malformed one returns an *UnreadableError.
func LoadStrict(path string) (todo.Tasks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task store: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &UnreadableError{Path: path, Err: errors.New("file is empty")}
	}
	tasks, err := Decode(data)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	return tasks, nil
}

// Load reads the store at path, returning an empty list when the file is
// missing or cannot be parsed.
func Load(path string) todo.Tasks {
	tasks, err := LoadStrict(path)
	switch {
	case err == nil:
		return tasks
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("task store not found, starting empty", "path", path)
	default:
		log.Debug("task store unreadable, starting empty", "path", path, "err", err)
	}
	return todo.Tasks{}
}

// Exists reports whether a store file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Save replaces the store at path with tasks. The parent directory must exist.
func Save(path string, tasks todo.Tasks) error {
	data, err := Encode(tasks)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnwritable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnwritable, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write %s: %w", ErrStoreUnwritable, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrStoreUnwritable, tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %w", ErrStoreUnwritable, tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", ErrStoreUnwritable, path, err)
	}

	log.Debug("task store saved", "path", path, "tasks", len(tasks))
	return nil
}
