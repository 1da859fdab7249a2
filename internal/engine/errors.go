package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput classifies every rejected CurveInput field or argument.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTooManyArgs is returned by ParseArgs for more than four positional arguments.
	ErrTooManyArgs = errors.New("too many arguments")
)

// FieldError names the offending field, the value it held and why it was rejected.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s=%s: %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

func fieldError(field string, value any, reason string) *FieldError {
	return &FieldError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}

// ErrorDetails flattens err for JSON callers. A *FieldError adds its field and reason.
func ErrorDetails(err error) map[string]any {
	details := map[string]any{"error": err.Error()}
	var fe *FieldError
	if errors.As(err, &fe) {
		details["field"] = fe.Field
		details["reason"] = fe.Reason
	}
	return details
}
