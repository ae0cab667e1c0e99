package sandbox

import (
	"errors"
	"fmt"
)

// Kind classifies operation failures.
type Kind string

const (
	KindDenied    Kind = "denied"     // resolved path escapes the sandbox root
	KindNotFound  Kind = "not_found"  // target does not exist at resolution time
	KindWrongType Kind = "wrong_type" // expected a file, found a directory (or vice versa)
	KindDecode    Kind = "decode"     // file content is not valid UTF-8
	KindIO        Kind = "io"         // underlying filesystem error
)

// Error is the structured failure returned by every operation. Path is
// sandbox-relative; real filesystem locations never leave the package.
type Error struct {
	Kind   Kind
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind, defaulting to KindIO for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindIO
}

// IsDenied reports whether err is a containment denial.
func IsDenied(err error) bool {
	return KindOf(err) == KindDenied
}

// IsNotFound reports whether err is a missing-target failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func denied(path string) *Error {
	return &Error{Kind: KindDenied, Path: path, Reason: "path escapes sandbox root"}
}

func notFound(path string) *Error {
	return &Error{Kind: KindNotFound, Path: path, Reason: "no such file or directory"}
}

func wrongType(path, reason string) *Error {
	return &Error{Kind: KindWrongType, Path: path, Reason: reason}
}

func decodeFailed(path string) *Error {
	return &Error{Kind: KindDecode, Path: path, Reason: "content is not valid UTF-8"}
}

func ioError(path string, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Err: err}
}
