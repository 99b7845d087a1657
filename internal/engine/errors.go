package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a caller contract violation: non-positive credits,
// empty names, unknown grades, duplicate courses or an unusable bias.
var ErrInvalidInput = errors.New("invalid input")

// InputError pinpoints which element of the input broke the contract.
// Index is the position in the supplied slice, or -1 for scalar arguments.
type InputError struct {
	Index  int
	Course string
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: course %d (%q): %s %s", ErrInvalidInput, e.Index, e.Course, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
