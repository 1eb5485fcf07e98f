package parser

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPrice  = errors.New("malformed price")
	ErrMalformedRating = errors.New("malformed rating")
	ErrMalformedCount  = errors.New("malformed count")
	ErrMalformedURL    = errors.New("malformed url")
	ErrNoResults       = errors.New("no usable results in search page")
)

// MissingFieldError aborts extraction of a record when a mandatory
// field cannot be resolved. Optional fields never produce it; they
// degrade to their zero value instead.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing mandatory field: %s", e.Field)
}
