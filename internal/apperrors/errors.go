// Package apperrors defines the error taxonomy shared by the session
// provider, the booking workflow and the HTTP handlers. Every error here is
// user-visible and non-fatal; the original cause of a store failure is
// logged at the boundary but never exposed.
package apperrors

import "fmt"

// ValidationError is a client-side input failure. It is raised before any
// store call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError for a named field.
func Validation(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// AuthError is a credential or duplicate-account failure from the session
// provider, carrying a human-readable message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// StoreError wraps any failed read or insert against the record store. The
// user-facing message is a generic retry suggestion; Cause is for logs only.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Store wraps err as a StoreError for the given operation.
func Store(op string, err error) *StoreError {
	return &StoreError{Op: op, Cause: err}
}

// StateError is an attempt to drive the booking workflow from a state that
// does not allow it, e.g. submitting with no candidate or no identity.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string {
	return e.Reason
}
