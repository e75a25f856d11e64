package errors

import (
	"errors"
	"fmt"
)

// PathNotFoundError indicates the database file did not exist when the
// store was constructed. It is distinct from OpenError: the engine was
// never asked to open anything.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("database path not found: %s", e.Path)
}

// NewPathNotFoundError creates a PathNotFoundError for the given path.
func NewPathNotFoundError(path string) *PathNotFoundError {
	return &PathNotFoundError{Path: path}
}

// IsPathNotFoundError reports whether err is a PathNotFoundError (even when wrapped).
func IsPathNotFoundError(err error) bool {
	var pathErr *PathNotFoundError
	return errors.As(err, &pathErr)
}
