// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

import "io"

// FileAdapter presents a Writer as an io.ReadWriteSeeker, the Go analogue
// of Riegeli's WriterCFile: a single handle that can be read from and
// written to like a random-access file, transparently switching the
// underlying Writer between write mode and ReadMode as calls demand.
//
// Only one of the two modes is active at a time. Read switches to read
// mode (via Writer.ReadMode) the first time it is called; Write switches
// back to write mode (via a Seek to the reader's current position) the
// first time it is called after a read. This mirrors
// WriterCFileCookieBase::Read/Write in the C++ implementation, including
// its rule that seeking to the current position always succeeds even when
// the underlying Writer does not support random access.
type FileAdapter struct {
	w      Writer
	reader Reader // non-nil while in read mode
}

// NewFileAdapter wraps w. w must not be used directly while the adapter is
// in read mode (between a Read call and the next Write or Close).
func NewFileAdapter(w Writer) *FileAdapter {
	return &FileAdapter{w: w}
}

// Read implements io.Reader, entering read mode on first use.
func (f *FileAdapter) Read(p []byte) (int, error) {
	if f.reader == nil {
		pos := f.w.Pos()
		f.reader = f.w.ReadMode(pos)
		if f.reader == nil {
			return 0, f.w.Status()
		}
		if f.reader.Pos() != pos {
			return 0, Statusf(CodeInternal, "ReadMode landed at wrong position")
		}
	}
	if !f.reader.Pull(1) {
		if !f.reader.OK() {
			return 0, f.reader.Status()
		}
		return 0, io.EOF
	}
	n := minInt(len(p), f.reader.Available())
	read, ok := f.reader.Read(p[:n])
	if !ok {
		return read, f.reader.Status()
	}
	return read, nil
}

// Write implements io.Writer, leaving read mode (seeking the underlying
// Writer to where reading left off) on first use after a Read.
func (f *FileAdapter) Write(p []byte) (int, error) {
	if f.reader != nil {
		pos := f.reader.Pos()
		f.reader = nil
		if !f.w.Seek(pos) {
			return 0, f.w.Status()
		}
	}
	if !f.w.Write(p) {
		return 0, f.w.Status()
	}
	return len(p), nil
}

// Seek implements io.Seeker. Seeking to the current position always
// succeeds, even over a Writer without random-access support, matching
// the C++ adapter's rationale: no data needs to move for a no-op seek.
func (f *FileAdapter) Seek(offset int64, whence int) (int64, error) {
	cur := func() Position {
		if f.reader != nil {
			return f.reader.Pos()
		}
		return f.w.Pos()
	}()
	var newPos Position
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return 0, Statusf(CodeInvalidArgument, "negative absolute offset")
		}
		newPos = Position(offset)
	case io.SeekCurrent:
		if offset < 0 {
			if Position(-offset) > cur {
				return 0, Statusf(CodeInvalidArgument, "seek before start")
			}
			newPos = cur - Position(-offset)
		} else {
			newPos = cur + Position(offset)
		}
	case io.SeekEnd:
		size, ok := f.sizeForSeekEnd()
		if !ok {
			return 0, ErrNotSeekable
		}
		if offset > 0 || Position(-offset) > size {
			return 0, Statusf(CodeInvalidArgument, "seek beyond end")
		}
		newPos = size - Position(-offset)
	default:
		return 0, Statusf(CodeInvalidArgument, "unknown whence")
	}

	if newPos == cur {
		return int64(newPos), nil
	}
	if f.reader != nil {
		if !f.reader.SupportsRewind() {
			return 0, ErrNotSeekable
		}
		if _, ok := f.reader.Seek(newPos); !ok {
			return 0, f.reader.Status()
		}
		return int64(newPos), nil
	}
	if f.w.SupportsRandomAccess() {
		if !f.w.Seek(newPos) {
			return 0, f.w.Status()
		}
		return int64(newPos), nil
	}
	if !f.w.SupportsReadMode() {
		return 0, ErrNotSeekable
	}
	f.reader = f.w.ReadMode(newPos)
	if f.reader == nil {
		return 0, f.w.Status()
	}
	if f.reader.Pos() != newPos {
		return 0, Statusf(CodeInternal, "ReadMode landed at wrong position")
	}
	return int64(newPos), nil
}

func (f *FileAdapter) sizeForSeekEnd() (Position, bool) {
	if f.reader != nil {
		if !f.reader.SupportsSize() {
			return 0, false
		}
		return f.reader.Size()
	}
	if !f.w.SupportsSize() {
		return 0, false
	}
	return f.w.Size()
}

// Close closes the underlying Writer (and, if active, the read-mode
// Reader it produced).
func (f *FileAdapter) Close() error {
	if f.reader != nil {
		f.reader.Close()
		f.reader = nil
	}
	if !f.w.Close() {
		return f.w.Status()
	}
	return nil
}
