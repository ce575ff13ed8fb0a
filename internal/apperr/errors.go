package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a quiz, result or user id has no match.
	ErrNotFound = errors.New("not found")
	// ErrNotEntitled is returned when a student starts a quiz they have not purchased.
	ErrNotEntitled = errors.New("quiz not purchased")
	// ErrQuizInactive is returned when a quiz has been toggled off by the admin.
	ErrQuizInactive = errors.New("quiz is not active")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrSessionNotFound is returned when an exam session id has no live session.
	ErrSessionNotFound = errors.New("exam session not found")
	// ErrAlreadySubmitted is returned on a second submit of the same session.
	ErrAlreadySubmitted = errors.New("exam session already submitted")
	// ErrForbidden is returned when a caller touches a resource they do not own.
	ErrForbidden = errors.New("forbidden")
)

// FieldError is a single field-level authoring complaint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects malformed quiz/question authoring input. It is
// surfaced to the admin as field-level messages and never stored.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field complaint and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any field complaint was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
