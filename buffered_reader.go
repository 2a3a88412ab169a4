// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// BufferedReaderBackend supplies the one primitive a BufferedReader cannot
// provide generically: filling a caller-owned slice directly from the
// underlying source, bypassing the Reader's own buffer. Everything else —
// window management, buffer growth, the Read/Skip/AppendTo contract — is
// handled by BufferedReader itself.
//
// A backend reports its capabilities (seeking, sizing) via the Supports*
// methods. BufferedReader.Size returns (0, false) without calling Size
// when SupportsSize is false. BufferedReader.Seek outside the buffered
// window always calls SeekBehindBuffer, and a false result fails the
// reader with ErrNotSeekable (CodeUnimplemented).
type BufferedReaderBackend interface {
	// ReadInternal reads directly from the source at its current position
	// into dst, returning the number of bytes read. It may return fewer
	// than len(dst) bytes at any time; BufferedReader keeps calling it
	// until it has enough. n == 0 with ok true means clean end of source;
	// ok is false only on failure.
	ReadInternal(dst []byte) (n int, ok bool)

	// SupportsRandomAccess reports whether SeekBehindBuffer can move to an
	// arbitrary position, including one beyond what has been read so far.
	SupportsRandomAccess() bool
	// SupportsRewind reports whether SeekBehindBuffer can move backward at
	// all.
	SupportsRewind() bool
	// SupportsSize reports whether Size can return a meaningful value.
	SupportsSize() bool

	// SeekBehindBuffer moves the source's read position, called only after
	// BufferedReader has discarded its buffer. It returns the actual
	// resulting position (which may be clamped to the source's size) and
	// false on failure.
	SeekBehindBuffer(pos Position) (newPos Position, ok bool)
	// Size returns the total source size, if known.
	Size() (Position, bool)
	// CloseBackend releases backend-owned resources (file descriptors,
	// etc.).
	CloseBackend() bool
}

// BufferedReader implements Reader on top of a BufferedReaderBackend,
// the Go equivalent of Riegeli's BufferedReader<Src> template: it owns the
// fill buffer and the growth policy; the backend only knows how to read a
// contiguous chunk starting at the current position.
type BufferedReader struct {
	readerState
	backend BufferedReaderBackend
	sizer   bufferSizer
}

// NewBufferedReader constructs a BufferedReader starting at stream
// position 0, applying any ReaderOptions given.
func NewBufferedReader(backend BufferedReaderBackend, opts ...ReaderOption) *BufferedReader {
	cfg := defaultReaderConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &BufferedReader{
		backend: backend,
		sizer:   newBufferSizer(cfg.bufferSize, cfg.sizeHint, cfg.haveSizeHint),
	}
}

// ReaderOption configures a BufferedReader or PullableReader at
// construction time.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	bufferSize    int
	sizeHint      Position
	haveSizeHint  bool
	growingSource bool
}

func defaultReaderConfig() readerConfig {
	return readerConfig{bufferSize: DefaultBufferSize}
}

// WithBufferSize overrides the default fill buffer size.
func WithBufferSize(n int) ReaderOption {
	return func(c *readerConfig) { c.bufferSize = n }
}

// WithSizeHint tells the reader roughly how large the stream is, so its
// buffer growth can avoid over-allocating near the end.
func WithSizeHint(n Position) ReaderOption {
	return func(c *readerConfig) { c.sizeHint, c.haveSizeHint = n, true }
}

// WithGrowingSource marks the source as one that may still be appended to
// after this reader observes what looks like its end: a discovered size or
// an apparent EOF is a hint, not a cached fact, and a later Pull re-checks
// the backend instead of trusting it.
func WithGrowingSource() ReaderOption {
	return func(c *readerConfig) { c.growingSource = true }
}

func (r *BufferedReader) Pull(length int) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	if !r.ok() {
		return false
	}
	if r.available() >= length {
		return true
	}
	pending := r.available()
	newLen := r.sizer.bufferLength(length, r.startPos(), len(r.buf))
	if newLen < pending+length {
		newLen = pending + length
	}
	newBuf, release := acquireBuffer(newLen)
	copy(newBuf, r.buf[r.cursor:])
	filled := pending
	for filled < length {
		n, ok := r.backend.ReadInternal(newBuf[filled:])
		filled += n
		if !ok {
			r.installBuffer(newBuf[:filled], 0, r.limitPos+Position(filled-pending), release)
			if src, hasStatus := r.backend.(failureStatusSource); hasStatus {
				return r.fail(src.failureStatus())
			}
			return r.fail(errShortSource)
		}
		if n == 0 {
			// Clean end of source.
			break
		}
	}
	newLimitPos, addOK := addPosition(r.limitPos, filled-pending)
	if !addOK {
		release()
		return r.fail(ErrOverflow)
	}
	r.installBuffer(newBuf[:filled], 0, newLimitPos, release)
	return filled >= length
}

func (r *BufferedReader) Read(dst []byte) (int, bool) {
	if r.closed {
		r.fail(ErrClosed)
		return 0, false
	}
	total := 0
	for total < len(dst) {
		if r.available() == 0 {
			if !r.Pull(1) {
				return total, false
			}
		}
		n := copy(dst[total:], r.buf[r.cursor:])
		r.cursor += n
		total += n
	}
	return total, true
}

func (r *BufferedReader) AppendTo(n int, dst ByteSink) (int, bool) {
	if r.closed {
		r.fail(ErrClosed)
		return 0, false
	}
	total := 0
	for total < n {
		if r.available() == 0 {
			if !r.Pull(1) {
				return total, false
			}
		}
		want := n - total
		if want > r.available() {
			want = r.available()
		}
		dst.Write(r.buf[r.cursor : r.cursor+want])
		r.cursor += want
		total += want
	}
	return total, true
}

func (r *BufferedReader) Skip(length int) bool {
	n, ok := r.Read(make([]byte, minInt(length, DefaultBufferSize)))
	total := n
	for ok && total < length {
		var n2 int
		n2, ok = r.Read(make([]byte, minInt(length-total, DefaultBufferSize)))
		total += n2
	}
	return ok && total == length
}

func (r *BufferedReader) ReadFull(dst []byte) (int, bool) { return r.Read(dst) }

func (r *BufferedReader) Buffered() int { return r.available() }

func (r *BufferedReader) CopyTo(dst Writer, n int) (Position, bool) { return CopyN(dst, r, Position(n)) }

func (r *BufferedReader) Sync(syncType SyncType) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	return r.ok()
}

func (r *BufferedReader) Pos() Position { return r.pos() }

func (r *BufferedReader) Available() int { return r.available() }

func (r *BufferedReader) SupportsRandomAccess() bool { return r.backend.SupportsRandomAccess() }

func (r *BufferedReader) SupportsRewind() bool { return r.backend.SupportsRewind() }

func (r *BufferedReader) SupportsSize() bool { return r.backend.SupportsSize() }

func (r *BufferedReader) Seek(pos Position) (Position, bool) {
	if r.closed {
		return 0, r.fail(ErrClosed)
	}
	if pos >= r.startPos() && pos <= r.limitPos {
		r.cursor = int(pos - r.startPos())
		return pos, true
	}
	newPos, ok := r.backend.SeekBehindBuffer(pos)
	if !ok {
		return r.pos(), r.fail(ErrNotSeekable)
	}
	r.releaseBuf()
	r.setBuffer(nil, 0, newPos)
	return newPos, true
}

func (r *BufferedReader) Size() (Position, bool) {
	if r.closed || !r.backend.SupportsSize() {
		return 0, false
	}
	return r.backend.Size()
}

func (r *BufferedReader) Close() bool {
	if r.closed {
		return r.ok()
	}
	r.closed = true
	r.releaseBuf()
	if !r.backend.CloseBackend() {
		return r.fail(Statusf(CodeUnknown, "backend close failed"))
	}
	return r.ok()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// errShortSource is the Status BufferedReader.Pull fails with when a
// backend's ReadInternal reports failure and the backend does not
// implement failureStatusSource to supply a more precise one.
var errShortSource = Statusf(CodeUnknown, "short read from source")
