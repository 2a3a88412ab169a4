// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

import "io"

// lazyBool is a tri-state flag for a capability that is only knowable by
// trying it: unknown until the first probe, then pinned to whatever the
// probe found. It mirrors Riegeli's LazyBoolState used by
// IStreamReaderBase::SupportsRandomAccess(), which seeks to the end and
// back once to find out, then remembers the answer. Close() collapses an
// unknown answer to false per the same reasoning: answering "maybe" is not
// useful to a caller who can no longer ask again.
type lazyBool struct {
	known bool
	value bool
}

func (b *lazyBool) get(probe func() bool) bool {
	if !b.known {
		b.value = probe()
		b.known = true
	}
	return b.value
}

func (b *lazyBool) collapse() {
	if !b.known {
		b.known = true
		b.value = false
	}
}

// StreamReaderBackend adapts an io.Reader (optionally also an io.Seeker)
// into a BufferedReaderBackend, the Go analogue of Riegeli's
// IStreamReaderBase: a reader over a standard library stream whose
// seekability and size are not known up front and must be probed.
type StreamReaderBackend struct {
	src    io.Reader
	seeker io.Seeker // nil if src does not implement io.Seeker

	randomAccess lazyBool
	sizeKnown    bool
	size         Position

	growingSource bool
	lastErr       error
}

// NewStreamReaderBackend wraps src. If src also implements io.Seeker,
// random-access support is probed lazily on first use.
func NewStreamReaderBackend(src io.Reader, growingSource bool) *StreamReaderBackend {
	b := &StreamReaderBackend{src: src, growingSource: growingSource}
	if s, ok := src.(io.Seeker); ok {
		b.seeker = s
	}
	return b
}

func (b *StreamReaderBackend) ReadInternal(dst []byte) (int, bool) {
	n, err := b.src.Read(dst)
	if err != nil && err != io.EOF {
		b.lastErr = err
		return n, false
	}
	return n, true
}

// failureStatus reports the errno-classified Status for the most recent
// ReadInternal failure, letting BufferedReader surface a precise code
// instead of a generic CodeUnknown.
func (b *StreamReaderBackend) failureStatus() Status { return statusFromErr(b.lastErr) }

// probeRandomAccess determines random-access support the way
// IStreamReaderBase does: seek to the end, read the resulting offset as
// the size, then seek back to where the caller was.
func (b *StreamReaderBackend) probeRandomAccess() bool {
	if b.seeker == nil {
		return false
	}
	cur, err := b.seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return false
	}
	end, err := b.seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return false
	}
	if _, err := b.seeker.Seek(cur, io.SeekStart); err != nil {
		return false
	}
	b.sizeKnown = true
	b.size = Position(end)
	return true
}

func (b *StreamReaderBackend) SupportsRandomAccess() bool {
	if b.growingSource {
		// A growing source's discovered size is a hint, not authoritative,
		// so treat it as unseekable to arbitrary positions beyond the
		// currently-buffered window; rewinding still works via the Seek
		// backend hook when random access is otherwise available.
		return false
	}
	return b.randomAccess.get(b.probeRandomAccess)
}

func (b *StreamReaderBackend) SupportsRewind() bool {
	return b.seeker != nil
}

func (b *StreamReaderBackend) SupportsSize() bool {
	if b.sizeKnown {
		return true
	}
	return b.seeker != nil
}

func (b *StreamReaderBackend) SeekBehindBuffer(pos Position) (Position, bool) {
	if b.seeker == nil {
		return 0, false
	}
	newPos, err := b.seeker.Seek(int64(pos), io.SeekStart)
	if err != nil {
		return 0, false
	}
	return Position(newPos), true
}

func (b *StreamReaderBackend) Size() (Position, bool) {
	if b.sizeKnown && !b.growingSource {
		return b.size, true
	}
	if b.seeker == nil {
		return 0, false
	}
	cur, err := b.seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, false
	}
	end, err := b.seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false
	}
	if _, err := b.seeker.Seek(cur, io.SeekStart); err != nil {
		return 0, false
	}
	b.sizeKnown = true
	b.size = Position(end)
	return b.size, true
}

func (b *StreamReaderBackend) CloseBackend() bool {
	b.randomAccess.collapse()
	if c, ok := b.src.(io.Closer); ok {
		return c.Close() == nil
	}
	return true
}

// NewStreamReader constructs a buffered Reader over an arbitrary
// io.Reader, applying ReaderOptions for buffer sizing and size hints.
func NewStreamReader(src io.Reader, opts ...ReaderOption) *BufferedReader {
	cfg := defaultReaderConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return NewBufferedReader(NewStreamReaderBackend(src, cfg.growingSource), opts...)
}
