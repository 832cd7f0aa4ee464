package data

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested dataset file does not exist.
var ErrNotFound = errors.New("dataset not found")

// LoadError wraps any failure reading or decoding a dataset file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load dataset: %v", e.Err)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsNotFound is shorthand for errors.Is(err, ErrNotFound).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
