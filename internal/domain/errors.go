package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
	ErrStorage    = errors.New("storage failure")
)

// StorageError reports a blob store failure for a named item.
// Its message is safe to show to clients.
type StorageError struct {
	Op   string // "save", "create directory", ...
	Name string // file or folder name as given by the client
	Err  error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s %s", e.Op, e.Name)
}

// Unwrap exposes the underlying cause for logging
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match against ErrStorage
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
