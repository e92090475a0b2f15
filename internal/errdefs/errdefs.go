package errdefs

import (
	"errors"
	"fmt"
)

// Kind classifies an error into one of the fixed skillyard categories.
type Kind string

const (
	// KindValidation marks malformed or unacceptable user input.
	KindValidation Kind = "validation"
	// KindInvalidPath marks a path outside the sanctioned roots or a
	// relative path that fails normalization.
	KindInvalidPath Kind = "invalid_path"
	// KindNotFound marks a missing tool, skill, or file.
	KindNotFound Kind = "not_found"
	// KindNetwork marks a failed HTTP exchange with a remote service.
	KindNetwork Kind = "network"
	// KindVcs marks a failed git subprocess.
	KindVcs Kind = "vcs"
	// KindIo marks a local filesystem failure.
	KindIo Kind = "io"
)

// Error carries a category alongside the message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so
// errors.Is(err, &Error{Kind: KindNotFound}) works across wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Validationf builds a validation error.
func Validationf(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

// InvalidPathf builds an invalid-path error.
func InvalidPathf(format string, args ...any) *Error {
	return newf(KindInvalidPath, format, args...)
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

// Networkf builds a network error.
func Networkf(format string, args ...any) *Error {
	return newf(KindNetwork, format, args...)
}

// Vcsf builds a vcs error.
func Vcsf(format string, args ...any) *Error {
	return newf(KindVcs, format, args...)
}

// Iof builds an io error wrapping cause.
func Iof(cause error, format string, args ...any) *Error {
	e := newf(KindIo, format, args...)
	e.Err = cause
	return e
}

// Wrap attaches a cause to a categorized error built elsewhere.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	e := newf(kind, format, args...)
	e.Err = cause
	return e
}

// KindOf returns the category of err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsValidation reports whether err is categorized as validation.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsInvalidPath reports whether err is categorized as invalid-path.
func IsInvalidPath(err error) bool { return KindOf(err) == KindInvalidPath }

// IsNotFound reports whether err is categorized as not-found.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsNetwork reports whether err is categorized as network.
func IsNetwork(err error) bool { return KindOf(err) == KindNetwork }

// IsVcs reports whether err is categorized as vcs.
func IsVcs(err error) bool { return KindOf(err) == KindVcs }

// IsIo reports whether err is categorized as io.
func IsIo(err error) bool { return KindOf(err) == KindIo }
