// Package keccakerr defines the structured error kinds that every
// fallible operation in gokeccak reports: InvalidParameter,
// InvalidInputFormat, MalformedInput, UseAfterFinalize and
// InternalInvariantViolation. None of these are retried internally;
// they propagate to the caller at the boundary where they are
// detected.
package keccakerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a gokeccak error.
type Kind int

const (
	// InvalidParameter covers an out-of-range b, c, d or output length.
	InvalidParameter Kind = iota
	// InvalidInputFormat covers an unrecognized input_format tag.
	InvalidInputFormat
	// MalformedInput covers odd-length hex, non-hex characters,
	// non-{0,1} bit characters, malformed base64, or a leftover
	// partial byte at finalize time for formats that forbid one.
	MalformedInput
	// UseAfterFinalize covers update/finalize calls on an instance
	// that has already produced its output.
	UseAfterFinalize
	// InternalInvariantViolation marks a bug, not a user error: e.g.
	// absorption invoked with fewer than r buffered bits, or a padded
	// buffer whose length isn't a multiple of r.
	InternalInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "InvalidParameter"
	case InvalidInputFormat:
		return "InvalidInputFormat"
	case MalformedInput:
		return "MalformedInput"
	case UseAfterFinalize:
		return "UseAfterFinalize"
	case InternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a structured gokeccak error: a Kind plus the underlying
// cause, wrapped with github.com/pkg/errors so callers can recover a
// stack trace via "%+v" or unwrap to the cause via errors.Cause.
type Error struct {
	Kind  Kind
	cause error
}

// New wraps cause as a gokeccak Error of the given Kind. cause may be
// nil, in which case the Kind's own description is used as the
// message.
func New(kind Kind, cause error) *Error {
	if cause == nil {
		cause = errors.New(kind.String())
	}
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.cause)
}

// Cause implements the github.com/pkg/errors Causer interface.
func (e *Error) Cause() error { return e.cause }

// Unwrap supports errors.Is / errors.As from the standard library.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a *Error with the same Kind, so
// errors.Is(err, keccakerr.New(keccakerr.UseAfterFinalize, nil)) works
// without comparing the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
