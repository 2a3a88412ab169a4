// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// BufferedWriterBackend supplies the primitive a BufferedWriter cannot
// provide generically: draining a contiguous chunk of already-accepted
// bytes to the destination. Everything else — window management, buffer
// growth, the Write/WriteZeros/Flush contract — is handled by
// BufferedWriter itself.
//
// Capabilities a given destination cannot support (seeking, truncating,
// switching to read mode, sizing) are reported false via the Supports*
// methods. BufferedWriter turns an unsupported Seek, Truncate or ReadMode
// into a CodeUnimplemented failure instead of invoking the backend
// method; an unsupported Size just returns (0, false).
type BufferedWriterBackend interface {
	// WriteInternal drains src to the destination directly, bypassing the
	// Writer's own buffer. It returns false only on failure; a short write
	// that is not a failure cannot happen for this primitive — destinations
	// either accept all of src or fail.
	WriteInternal(src []byte) bool

	SupportsRandomAccess() bool
	SupportsTruncate() bool
	SupportsReadMode() bool
	SupportsSize() bool

	// SeekBehindBuffer moves the destination's write position, called only
	// after BufferedWriter has drained its buffer.
	SeekBehindBuffer(pos Position) bool
	// Size returns the total size written so far, if known.
	Size() (Position, bool)
	// TruncateBehindBuffer shrinks or extends the destination, called only
	// after BufferedWriter has drained its buffer.
	TruncateBehindBuffer(newSize Position) bool
	// ReadModeBehindBuffer returns a Reader over bytes written so far,
	// called only after BufferedWriter has drained its buffer, or nil if
	// the switch failed.
	ReadModeBehindBuffer(pos Position) Reader
	// FlushBackend makes buffered-but-drained data durable per the
	// destination's own notion of durability (e.g. an os.File sync).
	FlushBackend() bool
	// CloseBackend releases backend-owned resources.
	CloseBackend() bool
}

// BufferedWriter implements Writer on top of a BufferedWriterBackend, the
// Go equivalent of Riegeli's BufferedWriter<Dest> template.
type BufferedWriter struct {
	writerState
	backend BufferedWriterBackend
	sizer   bufferSizer
}

// NewBufferedWriter constructs a BufferedWriter starting at stream
// position 0, applying any WriterOptions given.
func NewBufferedWriter(backend BufferedWriterBackend, opts ...WriterOption) *BufferedWriter {
	cfg := defaultWriterConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &BufferedWriter{
		backend: backend,
		sizer:   newBufferSizer(cfg.bufferSize, cfg.sizeHint, cfg.haveSizeHint),
	}
}

// WriterOption configures a BufferedWriter at construction time.
type WriterOption func(*writerConfig)

type writerConfig struct {
	bufferSize   int
	sizeHint     Position
	haveSizeHint bool
}

func defaultWriterConfig() writerConfig {
	return writerConfig{bufferSize: DefaultBufferSize}
}

// WithWriterBufferSize overrides the default drain buffer size.
func WithWriterBufferSize(n int) WriterOption {
	return func(c *writerConfig) { c.bufferSize = n }
}

// WithWriterSizeHint tells the writer roughly how large the total output
// will be.
func WithWriterSizeHint(n Position) WriterOption {
	return func(c *writerConfig) { c.sizeHint, c.haveSizeHint = n, true }
}

func (w *BufferedWriter) Push(length int) bool {
	if w.closed {
		return w.fail(ErrClosed)
	}
	if !w.ok() {
		return false
	}
	if w.available() >= length {
		return true
	}
	if err := w.drain(); !err {
		return false
	}
	newLen := w.sizer.bufferLength(length, w.startPos, len(w.buf))
	if newLen < length {
		newLen = length
	}
	newBuf, release := acquireBuffer(newLen)
	w.installBuffer(newBuf[:0], 0, w.pos(), release)
	w.buf = w.buf[:cap(w.buf)]
	return true
}

// drain flushes the current window to the backend and resets the buffer
// to empty at the same stream position.
func (w *BufferedWriter) drain() bool {
	if w.cursor == 0 {
		return true
	}
	if !w.backend.WriteInternal(w.buf[:w.cursor]) {
		return w.fail(w.writeFailStatus())
	}
	newStart, addOK := addPosition(w.startPos, w.cursor)
	if !addOK {
		return w.fail(ErrOverflow)
	}
	w.setBuffer(w.buf[:0], 0, newStart)
	return true
}

func (w *BufferedWriter) Write(src []byte) bool {
	if w.closed {
		return w.fail(ErrClosed)
	}
	if len(src) == 0 {
		return w.ok()
	}
	if w.sizer.lengthToWriteDirectly(len(src), w.cursor) {
		if !w.drain() {
			return false
		}
		if !w.backend.WriteInternal(src) {
			return w.fail(w.writeFailStatus())
		}
		newStart, addOK := addPosition(w.startPos, len(src))
		if !addOK {
			return w.fail(ErrOverflow)
		}
		w.startPos = newStart
		return true
	}
	remaining := src
	for len(remaining) > 0 {
		if !w.Push(1) {
			return false
		}
		n := copy(w.buf[w.cursor:], remaining)
		w.cursor += n
		remaining = remaining[n:]
	}
	return true
}

func (w *BufferedWriter) WriteZeros(length int) bool {
	if length == 0 {
		return w.ok()
	}
	zeros := make([]byte, minInt(length, DefaultBufferSize))
	remaining := length
	for remaining > 0 {
		n := minInt(remaining, len(zeros))
		if !w.Write(zeros[:n]) {
			return false
		}
		remaining -= n
	}
	return true
}

func (w *BufferedWriter) Pos() Position { return w.pos() }

func (w *BufferedWriter) SupportsRandomAccess() bool { return w.backend.SupportsRandomAccess() }
func (w *BufferedWriter) SupportsTruncate() bool     { return w.backend.SupportsTruncate() }
func (w *BufferedWriter) SupportsReadMode() bool     { return w.backend.SupportsReadMode() }
func (w *BufferedWriter) SupportsSize() bool         { return w.backend.SupportsSize() }

func (w *BufferedWriter) Seek(pos Position) bool {
	if w.closed {
		return w.fail(ErrClosed)
	}
	if pos == w.pos() {
		return true
	}
	if !w.drain() {
		return false
	}
	if !w.backend.SupportsRandomAccess() {
		return w.fail(ErrNotSeekable)
	}
	if !w.backend.SeekBehindBuffer(pos) {
		return w.fail(Statusf(CodeUnknown, "seek failed"))
	}
	w.startPos = pos
	return true
}

func (w *BufferedWriter) Size() (Position, bool) {
	if w.closed || !w.backend.SupportsSize() {
		return 0, false
	}
	if sz, ok := w.backend.Size(); ok {
		if w.pos() > sz {
			return w.pos(), true
		}
		return sz, true
	}
	return 0, false
}

func (w *BufferedWriter) Truncate(newSize Position) bool {
	if w.closed {
		return w.fail(ErrClosed)
	}
	if !w.drain() {
		return false
	}
	if !w.backend.SupportsTruncate() {
		return w.fail(ErrNotSeekable)
	}
	if !w.backend.TruncateBehindBuffer(newSize) {
		return w.fail(Statusf(CodeUnknown, "truncate failed"))
	}
	if w.startPos > newSize {
		w.startPos = newSize
	}
	return true
}

func (w *BufferedWriter) Flush(flushType FlushType) bool {
	if w.closed {
		return w.fail(ErrClosed)
	}
	if !w.drain() {
		return false
	}
	if flushType == FlushFromProcess && !w.backend.FlushBackend() {
		return w.fail(Statusf(CodeUnknown, "flush failed"))
	}
	return true
}

// writeFailStatus reports the errno-classified Status for the backend's
// most recent WriteInternal failure if it remembers one, falling back to a
// generic status for backends that never fail with an OS-level cause (e.g.
// MemoryWriterBackend, which fails only on caller misuse it reports
// itself).
func (w *BufferedWriter) writeFailStatus() Status {
	if src, ok := w.backend.(failureStatusSource); ok {
		return src.failureStatus()
	}
	return Statusf(CodeUnknown, "write to destination failed")
}

func (w *BufferedWriter) ReadMode(pos Position) Reader {
	if w.closed || !w.ok() {
		return nil
	}
	if !w.drain() {
		return nil
	}
	if !w.backend.SupportsReadMode() {
		w.fail(ErrNotSeekable)
		return nil
	}
	return w.backend.ReadModeBehindBuffer(pos)
}

func (w *BufferedWriter) Close() bool {
	if w.closed {
		return w.ok()
	}
	ok := w.drain()
	w.closed = true
	w.releaseBuf()
	if !w.backend.CloseBackend() {
		return w.fail(Statusf(CodeUnknown, "backend close failed"))
	}
	return ok && w.ok()
}
