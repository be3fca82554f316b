package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the service layer. Handlers map these onto
// HTTP status codes in exactly one place, so a store never has to know
// it is sitting behind a REST API.
var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("record already exists")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrUpstream     = errors.New("upstream service failure")
)

// ValidationError reports a rejected input field. It is a distinct type
// rather than a sentinel so the field name travels with the error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
