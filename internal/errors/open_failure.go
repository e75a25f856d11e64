package errors

import (
	"errors"
	"fmt"
)

// OpenError indicates the engine rejected an existing database file at
// construction time.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open database %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// NewOpenError creates an OpenError wrapping the engine error for the given path.
func NewOpenError(path string, err error) *OpenError {
	return &OpenError{Path: path, Err: err}
}

// IsOpenError reports whether err is an OpenError (even when wrapped).
func IsOpenError(err error) bool {
	var openErr *OpenError
	return errors.As(err, &openErr)
}
