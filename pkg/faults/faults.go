// Package faults defines the stable error taxonomy shared by every
// coordination component. Errors carry a machine-readable kind (mapped to
// API error codes and CLI exit codes) plus an optional detail object such as
// the conflicting resource snapshot.
package faults

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the stable categories.
type Kind string

// Stable error kinds.
const (
	KindValidation   Kind = "VALIDATION_ERROR"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindPrecondition Kind = "PRECONDITION_FAILED"
	KindCyclic       Kind = "CYCLIC_DEPENDENCY"
	KindTransient    Kind = "STORE_UNAVAILABLE"
	KindFatal        Kind = "INTERNAL_ERROR"
)

// Sentinel errors for the common precondition/authorisation failures.
// Callers match these with errors.Is; the API layer maps them through Wrap.
var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = New(KindNotFound, "entity not found")

	// ErrNotOwner is returned when a lock operation is attempted by a
	// specialist that does not hold the lock.
	ErrNotOwner = New(KindPrecondition, "lock is held by another specialist")

	// ErrNotAssigned is returned when a sortie operation is attempted by a
	// specialist other than the assignee.
	ErrNotAssigned = New(KindPrecondition, "sortie is assigned to another specialist")

	// ErrInvalidTransition is returned on an illegal state machine transition.
	ErrInvalidTransition = New(KindPrecondition, "invalid state transition")

	// ErrNonMonotonicCursor is returned when a cursor advance would move the
	// position backwards.
	ErrNonMonotonicCursor = New(KindPrecondition, "cursor position must be non-decreasing")

	// ErrDuplicateEvent is returned when an appended event id already exists.
	ErrDuplicateEvent = New(KindConflict, "event id already appended")

	// ErrCyclicDependency is returned when a sortie DAG contains a cycle.
	ErrCyclicDependency = New(KindCyclic, "sortie dependencies contain a cycle")
)

// Error is a categorised error with an optional detail object.
type Error struct {
	Kind    Kind
	Message string
	Detail  map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// Is matches against other *Error values by kind and message, so the
// sentinels above work with errors.Is even after WithDetail copies.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// New creates a categorised error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a categorised error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// WithDetail returns a copy of the error carrying a detail object, e.g. the
// conflicting lock snapshot on a CONFLICT.
func (e *Error) WithDetail(detail map[string]any) *Error {
	cp := *e
	cp.Detail = detail
	return &cp
}

// Validation is shorthand for a field-scoped validation error, mirroring the
// field/message shape the API reports.
func Validation(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: fmt.Sprintf("validation error on field '%s': %s", field, message),
		Detail:  map[string]any{"field": field},
	}
}

// KindOf extracts the kind from any error, defaulting to KindFatal for
// uncategorised errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindFatal
}

// IsTransient reports whether the error is retryable.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}
