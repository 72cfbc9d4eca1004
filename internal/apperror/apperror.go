// Package apperror defines the error taxonomy shared by the domain entities
// and the services that orchestrate them.
package apperror

import (
	"errors"
	"fmt"
)

// Kind is a coarse-grained categorization for domain errors.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindInvalidState     Kind = "invalid_state"
	KindRange            Kind = "out_of_range"
	KindNotFound         Kind = "not_found"
	KindUnavailable      Kind = "unavailable"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindConflict         Kind = "conflict"
	KindForbidden        Kind = "forbidden"
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidState     = errors.New("invalid state")
	ErrRange            = errors.New("value out of range")
	ErrNotFound         = errors.New("not found")
	ErrUnavailable      = errors.New("unavailable")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
)

var sentinels = map[Kind]error{
	KindValidation:       ErrValidation,
	KindInvalidState:     ErrInvalidState,
	KindRange:            ErrRange,
	KindNotFound:         ErrNotFound,
	KindUnavailable:      ErrUnavailable,
	KindCapacityExceeded: ErrCapacityExceeded,
	KindConflict:         ErrConflict,
	KindForbidden:        ErrForbidden,
}

// Error carries the failing operation, its kind and a human readable message.
type Error struct {
	Op      string
	Kind    Kind
	Field   string // Optional: offending input
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Message
	if base == "" {
		base = string(e.Kind)
	}
	if e.Op != "" {
		base = fmt.Sprintf("%s: %s", e.Op, base)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports a match against the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(op, format string, args ...any) error {
	return newf(KindValidation, op, format, args...)
}

// ValidationField is Validation with the offending field recorded.
func ValidationField(op, field, format string, args ...any) error {
	e := newf(KindValidation, op, format, args...)
	e.Field = field
	return e
}

func InvalidState(op, format string, args ...any) error {
	return newf(KindInvalidState, op, format, args...)
}

func Range(op, field, format string, args ...any) error {
	e := newf(KindRange, op, format, args...)
	e.Field = field
	return e
}

func NotFound(op, format string, args ...any) error {
	return newf(KindNotFound, op, format, args...)
}

func Unavailable(op, format string, args ...any) error {
	return newf(KindUnavailable, op, format, args...)
}

func CapacityExceeded(op, format string, args ...any) error {
	return newf(KindCapacityExceeded, op, format, args...)
}

func Conflict(op, format string, args ...any) error {
	return newf(KindConflict, op, format, args...)
}

func Forbidden(op, format string, args ...any) error {
	return newf(KindForbidden, op, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}

// IsKind helps callers classify errors without depending on concrete types.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
