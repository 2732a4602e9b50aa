package vault

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the Vault can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindAlreadyExists
	KindNotFound
	KindIndexCorrupt
	KindIndexWriteFailed
	KindBackendWriteFailed
	KindBackendDeleteFailed
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "already exists"
	case KindNotFound:
		return "not found"
	case KindIndexCorrupt:
		return "index corrupt"
	case KindIndexWriteFailed:
		return "index write failed"
	case KindBackendWriteFailed:
		return "backend write failed"
	case KindBackendDeleteFailed:
		return "backend delete failed"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Each matches any *Error of the same Kind.
var (
	ErrAlreadyExists       = &Error{Kind: KindAlreadyExists}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrIndexCorrupt        = &Error{Kind: KindIndexCorrupt}
	ErrIndexWriteFailed    = &Error{Kind: KindIndexWriteFailed}
	ErrBackendWriteFailed  = &Error{Kind: KindBackendWriteFailed}
	ErrBackendDeleteFailed = &Error{Kind: KindBackendDeleteFailed}
)

// Error is the only error type returned by Vault operations.
type Error struct {
	Kind  Kind
	Label string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Label != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Label)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, label string, err error) *Error {
	return &Error{Kind: kind, Label: label, Err: err}
}
