package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found. It is also
	// returned when an item exists but belongs to another user's cart, so
	// callers cannot probe for foreign items.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

func InvalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
