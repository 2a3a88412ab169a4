// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// StringReader is a Reader over an in-memory byte slice, the Go analogue
// of Riegeli's StringReader: since the whole source already sits in
// memory, it needs none of BufferedReader's fill machinery or
// PullableReader's scratch machinery — the entire source is installed as
// the window up front and Pull/Seek are pure bookkeeping.
type StringReader struct {
	readerState
	data []byte
}

// NewStringReader constructs a StringReader over data. data is retained,
// not copied; the caller must not mutate it while the reader is in use.
func NewStringReader(data []byte) *StringReader {
	r := &StringReader{data: data}
	r.setBuffer(data, 0, Position(len(data)))
	return r
}

func (r *StringReader) Pull(length int) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	return r.available() >= length && r.ok()
}

func (r *StringReader) Read(dst []byte) (int, bool) {
	if r.closed {
		r.fail(ErrClosed)
		return 0, false
	}
	n := copy(dst, r.buf[r.cursor:])
	r.cursor += n
	return n, n == len(dst)
}

func (r *StringReader) AppendTo(n int, dst ByteSink) (int, bool) {
	if r.closed {
		r.fail(ErrClosed)
		return 0, false
	}
	want := n
	if n > r.available() {
		n = r.available()
	}
	dst.Write(r.buf[r.cursor : r.cursor+n])
	r.cursor += n
	return n, n == want
}

func (r *StringReader) Skip(length int) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	if length > r.available() {
		r.cursor = len(r.buf)
		return false
	}
	r.cursor += length
	return true
}

func (r *StringReader) ReadFull(dst []byte) (int, bool) { return r.Read(dst) }
func (r *StringReader) Buffered() int                   { return r.available() }
func (r *StringReader) CopyTo(dst Writer, n int) (Position, bool) { return CopyN(dst, r, Position(n)) }
func (r *StringReader) Sync(syncType SyncType) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	return r.ok()
}

func (r *StringReader) Pos() Position              { return r.pos() }
func (r *StringReader) Available() int             { return r.available() }
func (r *StringReader) SupportsRandomAccess() bool { return true }
func (r *StringReader) SupportsRewind() bool       { return true }
func (r *StringReader) SupportsSize() bool         { return true }

func (r *StringReader) Seek(pos Position) (Position, bool) {
	if r.closed {
		return 0, r.fail(ErrClosed)
	}
	if pos > Position(len(r.data)) {
		r.cursor = len(r.data)
		return Position(len(r.data)), false
	}
	r.cursor = int(pos)
	return pos, true
}

func (r *StringReader) Size() (Position, bool) {
	if r.closed {
		return 0, false
	}
	return Position(len(r.data)), true
}

func (r *StringReader) Close() bool {
	if r.closed {
		return r.ok()
	}
	r.closed = true
	return r.ok()
}
