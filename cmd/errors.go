package cmd

import (
	"errors"
	"fmt"
)

// Argument errors. Both are reported before the store is touched.
var (
	ErrConflictingArguments = errors.New("conflicting arguments")
	ErrMissingMessage       = fmt.Errorf("%w: --edit and --message must be used together", ErrConflictingArguments)
)

// conflict returns an ErrConflictingArguments error with detail.
func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflictingArguments, fmt.Sprintf(format, args...))
}
