// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

import "github.com/valyala/bytebufferpool"

// Buffer sizing constants. DefaultBufferSize is the fill/drain chunk size
// used when neither a size hint nor an explicit WithBufferSize option says
// otherwise. MaxBufferSize caps how large buffer growth may make a single
// buffer; only a single request whose own minimum length exceeds it gets a
// larger buffer.
const (
	DefaultBufferSize = 64 << 10  // 64 KiB
	MinBufferSize     = 256       // smallest configurable base size; smaller WithBufferSize values are raised to it
	MaxBufferSize     = 64 << 20  // 64 MiB
)

// bufferPool backs every BufferedReader/BufferedWriter allocation. Pooling
// keeps repeated small reads/writes (the common case for record-oriented
// formats, which open and close many short-lived readers/writers over the
// same underlying file) from re-allocating a fresh 64 KiB slice each time.
var bufferPool bytebufferpool.Pool

// acquireBuffer returns a pooled []byte of at least size bytes, along with
// a release function the caller must invoke once it is done with the
// slice — not before. The backing array belongs exclusively to the caller
// until release is called; calling bufferPool.Put eagerly here (returning
// it to the pool while the caller is still about to use it as a long-lived
// window) would let the very next acquireBuffer call anywhere in the
// program hand out the same backing array, silently aliasing two buffers
// that each believe they own separate memory. The slice's length is set to
// size; callers that need less should reslice.
func acquireBuffer(size int) (buf []byte, release func()) {
	bb := bufferPool.Get()
	if cap(bb.B) < size {
		bb.B = make([]byte, size)
	} else {
		bb.B = bb.B[:size]
	}
	return bb.B, func() { bufferPool.Put(bb) }
}

// bufferSizer decides how large the next fill/drain buffer should be,
// mirroring Riegeli's BufferedReader/BufferedWriter growth policy: start at
// a size-hint-informed target, double from the previous buffer, end exactly
// at the size hint while it lies ahead, and never exceed MaxBufferSize
// unless a single request needs more.
type bufferSizer struct {
	base     int // explicit size from WithBufferSize, or 0 for default
	sizeHint Position
	haveHint bool
}

func newBufferSizer(base int, sizeHint Position, haveHint bool) bufferSizer {
	if base <= 0 {
		base = DefaultBufferSize
	}
	if base < MinBufferSize {
		base = MinBufferSize
	}
	return bufferSizer{base: base, sizeHint: sizeHint, haveHint: haveHint}
}

// bufferLength computes the size of the next buffer to allocate, given how
// many bytes are wanted right now (min), the stream position the buffer
// would start at, and the previous buffer's length (0 if there was none).
// The result is at least the target (base, or the distance to the size
// hint when that is smaller) and double prevLength when that is larger,
// cut back to end exactly at the size hint while the hint lies ahead. It
// is then clamped to at least min and to at most MaxBufferSize, except
// that a min above MaxBufferSize is honoured.
func (s bufferSizer) bufferLength(min int, pos Position, prevLength int) int {
	target := s.base
	toHint := 0
	if s.haveHint {
		if remaining, ok := subPosition(s.sizeHint, pos); ok {
			toHint = intSizeFromPosition(remaining)
			if toHint > 0 && toHint < target {
				target = toHint
			}
		}
	}
	length := prevLength * 2
	if length < target {
		length = target
	}
	if toHint > 0 && length > toHint {
		length = toHint
	}
	if length < min {
		length = min
	}
	if length > MaxBufferSize {
		length = MaxBufferSize
	}
	if length < min {
		// min itself exceeds MaxBufferSize; honor it anyway; the backend
		// asked for a specific amount and a short buffer would just cause
		// another immediate Pull.
		length = min
	}
	return length
}

// lengthToWriteDirectly reports whether a write of the given length should
// bypass the Writer's own buffer and go straight to the destination,
// mirroring BufferedWriter::LengthToWriteDirectly: large writes that
// already exceed the buffer target gain nothing from being copied into it
// first.
func (s bufferSizer) lengthToWriteDirectly(length, bufferedLength int) bool {
	return length >= s.base && length >= bufferedLength
}
