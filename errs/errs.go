// Package errs defines the error roots shared by the class and style
// builders. Errors from classification, extraction and parsing wrap one of
// them, so callers can classify a failure with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports a programmer mistake detected at construction
	// or at the first use of a shape: a missing converter, a field of a
	// type the active mode cannot use.
	ErrConfiguration = errors.New("configuration error")
	// ErrMalformedInput reports input text that cannot be split into
	// property:value pairs.
	ErrMalformedInput = errors.New("malformed input")
	// ErrNilArgument reports a nil callback where a value was required.
	ErrNilArgument = errors.New("nil argument")
)

// Configuration formats a message wrapped into ErrConfiguration.
func Configuration(format string, args ...any) error {
	return wrap(ErrConfiguration, format, args...)
}

// MalformedInput formats a message wrapped into ErrMalformedInput.
func MalformedInput(format string, args ...any) error {
	return wrap(ErrMalformedInput, format, args...)
}

// NilArgument reports that the named callback was nil.
func NilArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}

func wrap(root error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", root, fmt.Sprintf(format, args...))
}
