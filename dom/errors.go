package dom

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHead is returned when a document has no <head> element.
	ErrNoHead = errors.New("document has no head element")

	// ErrInvalidClass is returned for an empty class name or one that
	// contains whitespace.
	ErrInvalidClass = errors.New("invalid class name")
)

// LoadError reports a script that the Loader failed to load.
type LoadError struct {
	Src string // Script source URL
	Err error  // Error returned by the Loader
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load script %s: %v", e.Src, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
