package interest

import (
	"errors"
	"fmt"
)

var (
	// ErrNotNumeric an argument is not a number
	ErrNotNumeric = errors.New("values must be numeric")

	// ErrInvalidValue an argument is a number outside the accepted range.
	// The compound calculator also reports non-numeric arguments with this kind.
	ErrInvalidValue = errors.New("values must be non-negative")
)

// ArgumentError describes a rejected argument. It unwraps to ErrNotNumeric or ErrInvalidValue.
type ArgumentError struct {
	// Name of the argument, e.g. "principal"
	Name string

	// Value as it was passed in
	Value interface{}

	// Reason human-readable explanation
	Reason string

	// Kind one of ErrNotNumeric or ErrInvalidValue
	Kind error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s [%v]: %s", e.Name, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}
