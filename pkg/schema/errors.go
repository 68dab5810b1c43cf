package schema

import (
	"errors"
	"fmt"
)

// Messages shown to the user at the prompt.
const (
	MsgRequired      = "This field is required."
	MsgInvalidFormat = "Invalid format."
	MsgInvalidNumber = "Please enter a valid number."
	MsgYesNo         = "Please answer yes or no."
	MsgSelectSome    = "Please select one or more options."
	MsgInvalidDate   = "Please enter a valid date (YYYY-MM-DD)."
)

// FieldError represents a single recoverable field validation failure.
// Its Error text is the user-facing message, without the field id.
type FieldError struct {
	FieldID string // Field that failed
	Message string // Human-readable reason
	Value   any    // The rejected value
}

func (e *FieldError) Error() string {
	return e.Message
}

// IsRequired reports whether the failure is the required-field check.
func (e *FieldError) IsRequired() bool {
	return e.Message == MsgRequired
}

// AsFieldError extracts a *FieldError from err, if any.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func failf(fieldID string, value any, format string, args ...any) error {
	return &FieldError{FieldID: fieldID, Message: fmt.Sprintf(format, args...), Value: value}
}

func fail(fieldID string, value any, msg string) error {
	return &FieldError{FieldID: fieldID, Message: msg, Value: value}
}
