package descriptor

import (
	"errors"
	"fmt"

	"chartref/internal/diagnostic"
)

// ErrInvalidDescriptor indicates a descriptor failed validation.
var ErrInvalidDescriptor = errors.New("invalid chart descriptor")

// Error carries the validation diagnostics of a rejected descriptor.
type Error struct {
	Name        string
	Diagnostics diagnostic.Diagnostics
}

func (e *Error) Error() string {
	return fmt.Sprintf("descriptor %q: %v", e.Name, e.Diagnostics.Error())
}

func (e *Error) Unwrap() error {
	return ErrInvalidDescriptor
}
