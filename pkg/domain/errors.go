package domain

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredField is the sentinel for save-time validation failures,
// the only error class surfaced to the user
var ErrMissingRequiredField = errors.New("missing required field")

// MissingFieldError reports which required field was empty after trimming
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Is makes errors.Is(err, ErrMissingRequiredField) work for any field
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
