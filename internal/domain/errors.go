package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates an operation was attempted without an
// authenticated user.
var ErrUnauthorized = errors.New("not authenticated")

// ValidationError reports an out-of-range or missing input field. It is
// raised before any I/O so callers can render field-level messages and tell
// bad input apart from repository failures.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
