package sysio

import (
	"errors"
	"fmt"

	"github.com/Giulio2002/sysio/mmap"
)

// ErrorCode classifies every failure this package can report.
type ErrorCode int

const (
	// ErrIO indicates an OS call failure: open, read, write, seek, stat,
	// mmap, signal installation, directory operations.
	ErrIO ErrorCode = iota + 1

	// ErrInvalid indicates malformed caller input, such as a path with an
	// embedded NUL byte.
	ErrInvalid

	// ErrKey indicates a missing environment variable.
	ErrKey

	// ErrCapacity indicates a fixed-size retrieval buffer was too small.
	ErrCapacity
)

func (c ErrorCode) String() string {
	switch c {
	case ErrIO:
		return "io error"
	case ErrInvalid:
		return "invalid"
	case ErrKey:
		return "key error"
	case ErrCapacity:
		return "capacity error"
	default:
		return fmt.Sprintf("error code %d", int(c))
	}
}

// Error is the uniform error result for all fallible operations.
// Path carries the offending file path for file operations, already
// rendered in display form; it must survive translation so callers see
// which file an OS failure refers to.
type Error struct {
	Code    ErrorCode
	Message string
	Path    string
	Err     error // wrapped OS error, if any
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("sysio: %s: %v", msg, e.Err)
	}
	return fmt.Sprintf("sysio: %s", msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ioError wraps an OS-call failure. The wrapped err's Error method renders
// the native error text (strerror on POSIX, FormatMessage on Windows, with
// a numeric fallback when formatting itself fails).
func ioError(op string, err error) *Error {
	return &Error{Code: ErrIO, Message: op, Err: err}
}

// pathError is ioError with the offending path attached.
func pathError(op string, path Path, err error) *Error {
	return &Error{Code: ErrIO, Message: op, Path: path.ToText(), Err: err}
}

func invalidError(format string, args ...any) *Error {
	return &Error{Code: ErrInvalid, Message: fmt.Sprintf(format, args...)}
}

// Code extracts the ErrorCode from err, or 0 if err carries none. Errors
// from the mmap subpackage classify too: an OS-call failure is ErrIO, the
// caller-misuse sentinels (not mapped, read-only, invalid size) are
// ErrInvalid.
func Code(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var me *mmap.Error
	if errors.As(err, &me) {
		if me.Err != nil {
			return ErrIO
		}
		return ErrInvalid
	}
	return 0
}

// mapError tags a mapping failure with the offending path, preserving the
// underlying error's classification.
func mapError(path Path, err error) *Error {
	code := Code(err)
	if code == 0 {
		code = ErrIO
	}
	return &Error{Code: code, Message: "memory map failed", Path: path.ToText(), Err: err}
}

// IsIOError reports whether err is an OS-call failure.
func IsIOError(err error) bool {
	return Code(err) == ErrIO
}

// IsInvalid reports whether err indicates malformed caller input.
func IsInvalid(err error) bool {
	return Code(err) == ErrInvalid
}

// IsKeyError reports whether err indicates a missing environment variable.
func IsKeyError(err error) bool {
	return Code(err) == ErrKey
}

// IsCapacityError reports whether err indicates a too-small fixed buffer.
func IsCapacityError(err error) bool {
	return Code(err) == ErrCapacity
}
