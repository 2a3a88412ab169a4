// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

import (
	"errors"
	"io/fs"
	"syscall"
)

// failureStatusSource is implemented by a backend that remembers the last
// OS-level error it saw, so BufferedReader/BufferedWriter can report a
// precise errno-derived Status instead of a generic one when ReadInternal
// or WriteInternal reports failure. Optional: a backend with nothing more
// specific to say (e.g. MemoryWriterBackend) need not implement it.
type failureStatusSource interface {
	failureStatus() Status
}

// statusFromErr classifies an arbitrary error returned by an OS-facing
// backend (os.File, net.Conn, ...) into a Status, mirroring the errno ->
// Code table a Riegeli C++ backend builds via errno_mapping. EOF is not an
// error here: callers distinguish "false with OK status" (clean
// end-of-stream) from "false with failing status" before ever reaching
// this function.
func statusFromErr(err error) Status {
	if err == nil {
		return OKStatus
	}
	var errnoErr syscall.Errno
	if errors.As(err, &errnoErr) {
		return Statusf(codeFromErrno(errnoErr), "%s", err.Error())
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Statusf(CodeNotFound, "%s", err.Error())
	case errors.Is(err, fs.ErrExist):
		return Statusf(CodeAlreadyExists, "%s", err.Error())
	case errors.Is(err, fs.ErrPermission):
		return Statusf(CodePermissionDenied, "%s", err.Error())
	case errors.Is(err, fs.ErrClosed):
		return Statusf(CodeFailedPrecondition, "%s", err.Error())
	default:
		return Statusf(CodeUnknown, "%s", err.Error())
	}
}

// codeFromErrno maps the POSIX errno values a stream backend is realistically
// going to surface. Values with no obvious Code map to CodeUnknown rather
// than guessing.
func codeFromErrno(errno syscall.Errno) Code {
	switch errno {
	case syscall.ENOENT:
		return CodeNotFound
	case syscall.EEXIST:
		return CodeAlreadyExists
	case syscall.EACCES, syscall.EPERM:
		return CodePermissionDenied
	case syscall.EPIPE, syscall.ECONNRESET:
		return CodeAborted
	case syscall.EAGAIN:
		return CodeUnavailable
	case syscall.EIO:
		return CodeInternal
	case syscall.ENOSPC, syscall.ENOMEM, syscall.EMFILE, syscall.ENFILE:
		return CodeResourceExhausted
	case syscall.EINVAL:
		return CodeInvalidArgument
	case syscall.ESPIPE:
		return CodeUnimplemented
	case syscall.ENOSYS:
		return CodeUnimplemented
	default:
		return CodeUnknown
	}
}
