// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

import "fmt"

// Code is a canonical failure category, retrievable from a failed Reader or
// Writer via Status().Code(). End-of-stream is deliberately not a Code: it
// is reported by a plain `false` return with OK() still true, never by a
// Status.
type Code uint8

const (
	// CodeOK means the operation succeeded. A Status with CodeOK is nil-like:
	// OK() returns true and Error() returns "OK".
	CodeOK Code = iota

	// CodeCancelled means the operation was cancelled, typically by the
	// caller.
	CodeCancelled
	// CodeUnknown means the error could not be categorized, including
	// OS-level failures for which errno was unexpectedly zero.
	CodeUnknown
	// CodeInvalidArgument means a caller-supplied argument was invalid
	// (negative length, malformed position, null dependency, ...).
	CodeInvalidArgument
	// CodeFailedPrecondition means the object was not in a state that
	// allowed the operation (e.g. constructed already closed).
	CodeFailedPrecondition
	// CodeOutOfRange means a position computation exceeded MaxPosition or
	// the platform's representable range.
	CodeOutOfRange
	// CodeUnimplemented means the operation is not supported by this
	// concrete backend; feature queries must agree with this code.
	CodeUnimplemented
	// CodeResourceExhausted means a resource limit was hit (out of memory,
	// too many open files, disk full).
	CodeResourceExhausted
	// CodeDataLoss means unrecoverable data loss or corruption was
	// detected.
	CodeDataLoss

	// Errno-derived codes, beyond the core set spec.md names explicitly.
	// CodeNotFound mirrors ENOENT.
	CodeNotFound
	// CodeAlreadyExists mirrors EEXIST.
	CodeAlreadyExists
	// CodePermissionDenied mirrors EACCES/EPERM.
	CodePermissionDenied
	// CodeAborted mirrors a broken pipe or reset connection.
	CodeAborted
	// CodeUnavailable mirrors a transient condition worth retrying
	// (EAGAIN surfacing from a blocking call that should not see it).
	CodeUnavailable
	// CodeInternal mirrors EIO and other "the OS itself is unwell" errors.
	CodeInternal
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeCancelled:
		return "CANCELLED"
	case CodeUnknown:
		return "UNKNOWN"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeFailedPrecondition:
		return "FAILED_PRECONDITION"
	case CodeOutOfRange:
		return "OUT_OF_RANGE"
	case CodeUnimplemented:
		return "UNIMPLEMENTED"
	case CodeResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	case CodeDataLoss:
		return "DATA_LOSS"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeAlreadyExists:
		return "ALREADY_EXISTS"
	case CodePermissionDenied:
		return "PERMISSION_DENIED"
	case CodeAborted:
		return "ABORTED"
	case CodeUnavailable:
		return "UNAVAILABLE"
	case CodeInternal:
		return "INTERNAL"
	default:
		return "CODE(unknown)"
	}
}

// Status is the error carried by a failed Reader or Writer. The zero Status
// is OK. Status implements error so it composes with errors.Is/As/Unwrap.
type Status struct {
	code Code
	msg  string
}

// OK reports whether the status represents success.
func (s Status) OK() bool { return s.code == CodeOK }

// Code returns the canonical failure category. CodeOK on a zero Status.
func (s Status) Code() Code { return s.code }

// Message returns the human-readable detail, without the code prefix.
func (s Status) Message() string { return s.msg }

// Error implements the error interface. An OK status formats as "OK".
func (s Status) Error() string {
	if s.OK() {
		return "OK"
	}
	if s.msg == "" {
		return s.code.String()
	}
	return fmt.Sprintf("%s: %s", s.code.String(), s.msg)
}

// NewStatus builds a Status from a code and message. NewStatus(CodeOK, "")
// is the canonical OK status.
func NewStatus(code Code, msg string) Status { return Status{code: code, msg: msg} }

// Statusf is NewStatus with printf-style message formatting.
func Statusf(code Code, format string, args ...any) Status {
	return Status{code: code, msg: fmt.Sprintf(format, args...)}
}

// OKStatus is the canonical success value, useful as a named zero value.
var OKStatus = Status{code: CodeOK}

// Sentinel errors for conditions callers commonly want to match with
// errors.Is. Each is a Status, so its Code is available via Code().
var (
	// ErrOverflow reports that a position computation would exceed
	// MaxPosition. Code: CodeOutOfRange.
	ErrOverflow = NewStatus(CodeOutOfRange, "position would overflow")
	// ErrNotSeekable reports that a stream has no seekable end (SEEK_END
	// requested on a backend without SupportsSize). Code: CodeUnimplemented.
	ErrNotSeekable = NewStatus(CodeUnimplemented, "not a seekable stream")
	// ErrClosed reports use of an object after Close.
	ErrClosed = NewStatus(CodeFailedPrecondition, "object is closed")
)

// Is allows errors.Is(err, ErrOverflow) (etc.) to match any Status sharing
// the sentinel's Code and Message, without requiring identical instances.
func (s Status) Is(target error) bool {
	t, ok := target.(Status)
	if !ok {
		return false
	}
	return s.code == t.code && s.msg == t.msg
}
