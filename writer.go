// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// Writer is the push-model byte-stream contract, symmetric to Reader: a
// Writer owns a window of bytes already accepted but not yet drained to
// the destination, and Push is the only operation that may grow that
// window's capacity.
//
// No method may be called concurrently with another method on the same
// Writer.
type Writer interface {
	// Push ensures at least length bytes of buffer capacity are available
	// at the cursor, draining the window to the destination and installing
	// a larger one if needed. It returns false only on failure (a Writer
	// never reports "end of stream": callers control how much they write).
	Push(length int) bool

	// Write copies src into the window, draining as needed, and returns
	// false on failure. A successful Write always consumes all of src.
	Write(src []byte) bool

	// WriteZeros writes length zero bytes, a common enough pattern in
	// record padding to warrant avoiding a caller-allocated zero slice.
	WriteZeros(length int) bool

	// Pos returns the stream offset of the cursor (end of data written so
	// far).
	Pos() Position

	// SupportsRandomAccess reports whether Seek can move the cursor to an
	// arbitrary position, including backward, for overwriting.
	SupportsRandomAccess() bool

	// SupportsTruncate reports whether Truncate can shrink (or extend) the
	// destination.
	SupportsTruncate() bool

	// SupportsReadMode reports whether ReadMode can produce a Reader over
	// bytes already written.
	SupportsReadMode() bool

	// SupportsSize reports whether Size can return a meaningful value.
	SupportsSize() bool

	// Seek moves the cursor to pos for overwriting, returning false if the
	// backend cannot perform the seek.
	Seek(pos Position) bool

	// Size returns the total size written so far if known.
	Size() (Position, bool)

	// Truncate shrinks or extends the destination to newSize.
	Truncate(newSize Position) bool

	// Flush pushes buffered data to the destination, to the durability
	// domain named by flushType: see FlushType.
	Flush(flushType FlushType) bool

	// ReadMode returns a Reader over the bytes written so far, positioned
	// at pos, or nil if SupportsReadMode() is false or the switch failed.
	// After a successful ReadMode, the Writer itself must not be used
	// until the returned Reader is discarded; FileAdapter does this by
	// dropping the Reader and seeking the Writer to the Reader's position
	// before its next write.
	ReadMode(pos Position) Reader

	// Close flushes and releases resources. After Close, every other
	// method must fail with ErrClosed. Close is idempotent.
	Close() bool

	// OK reports whether the Writer is healthy.
	OK() bool

	// Status returns the diagnostic for the first failure, or OKStatus if
	// OK() is true.
	Status() Status
}

// writerState holds the fields every Writer implementation shares,
// mirroring readerState. Concrete backends embed it and add backend
// specific drain logic (see BufferedWriterBackend).
type writerState struct {
	buf    []byte
	cursor int
	// startPos is the stream position of buf[0]: the position of the
	// first byte in the current (undrained) window.
	startPos Position
	status   Status
	closed   bool
	// release, if non-nil, returns the currently installed buf to the
	// pool it was acquired from. nil when buf did not come from
	// acquireBuffer.
	release func()
}

func (w *writerState) pos() Position {
	p, _ := addPosition(w.startPos, w.cursor)
	return p
}

func (w *writerState) available() int { return len(w.buf) - w.cursor }

func (w *writerState) ok() bool { return w.status.OK() }

// OK reports whether the Writer is healthy, promoted to every type that
// embeds writerState.
func (w *writerState) OK() bool { return w.status.OK() }

// Status returns the diagnostic for the first failure, or OKStatus.
func (w *writerState) Status() Status { return w.status }

func (w *writerState) fail(s Status) bool {
	if w.status.OK() {
		w.status = s
	}
	return false
}

// setBuffer installs a fresh window after a drain: buf is the backing
// storage, cursor is how much of it is already filled with pending data,
// and startPos is the stream position of buf[0].
func (w *writerState) setBuffer(buf []byte, cursor int, startPos Position) {
	w.buf = buf
	w.cursor = cursor
	w.startPos = startPos
}

// installBuffer installs a fresh pool-acquired window, releasing whatever
// pool buffer was previously installed (if any).
func (w *writerState) installBuffer(buf []byte, cursor int, startPos Position, release func()) {
	w.releaseBuf()
	w.release = release
	w.setBuffer(buf, cursor, startPos)
}

// releaseBuf returns the currently installed pool buffer, if any, and
// clears the reference so it is not released twice.
func (w *writerState) releaseBuf() {
	if w.release != nil {
		w.release()
		w.release = nil
	}
}
