// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// PullableReaderBackend is the hook a fragmented source (one whose
// contiguous chunks do not line up with the caller's requested window)
// implements. It mirrors Riegeli's PullableReader<Src>: the backend tries
// to serve a Pull directly from its own fragments first; PullableReader
// only falls back to copying into a scratch buffer when the backend
// genuinely cannot make `length` contiguous bytes available (because they
// span a fragmentation boundary the backend does not itself bridge).
type PullableReaderBackend interface {
	// PullBehindScratch attempts to make length bytes available starting
	// at r's cursor using only the backend's own fragments (never scratch).
	// It is always called with the reader's real (non-scratch) window
	// installed via r.setBuffer/r.moveLimitPos. It returns true if it
	// fully satisfied length, false if it could not (including at clean
	// end of stream, where r.ok() remains true) or on failure (r.ok()
	// becomes false).
	PullBehindScratch(r *PullableReader, length int) bool

	SupportsRandomAccess() bool
	SupportsRewind() bool
	SupportsSize() bool

	// SeekBehindScratch moves the backend's real read position, called
	// only while scratch is inactive.
	SeekBehindScratch(r *PullableReader, pos Position) (Position, bool)
	Size() (Position, bool)
	CloseBackend() bool
}

type scratchSave struct {
	buf      []byte
	cursor   int
	limitPos Position
}

// PullableReader implements Reader on top of a PullableReaderBackend,
// adding the scratch-buffer mixin: when the backend cannot itself expose a
// contiguous run of bytes spanning one of its internal fragment
// boundaries, PullableReader copies just enough of those fragments into an
// owned scratch slice and presents that as the window instead, resuming
// from the backend's real window once the scratch content is consumed.
type PullableReader struct {
	readerState
	backend PullableReaderBackend
	scratch []byte
	saved   *scratchSave
}

// NewPullableReader constructs a PullableReader over backend.
func NewPullableReader(backend PullableReaderBackend) *PullableReader {
	return &PullableReader{backend: backend}
}

// SetBuffer installs a fresh real window: buf is the backend's own
// backing storage for the fragment starting at cursor, and limitPos is the
// stream position one past buf's end. PullBehindScratch implementations
// call this to hand the reader a fragment directly, the Go rendering of
// the base-class state a C++ subclass hook would mutate in place.
func (r *PullableReader) SetBuffer(buf []byte, cursor int, limitPos Position) {
	r.setBuffer(buf, cursor, limitPos)
}

// MoveLimitPos advances the window's limit position without changing buf
// or cursor, for a backend that has skipped bytes the window never held.
func (r *PullableReader) MoveLimitPos(delta int) { r.moveLimitPos(delta) }

func (r *PullableReader) inScratch() bool { return r.scratch != nil }

// scratchEnds reports whether the cursor has consumed all of the current
// scratch buffer, meaning it is safe to drop and resume the real window.
func (r *PullableReader) scratchEnds() bool {
	return r.inScratch() && r.cursor >= len(r.scratch)
}

// syncScratch drops a fully-consumed scratch buffer and restores the real
// window saved when scratch mode was entered. It is a no-op if scratch is
// inactive or not yet fully consumed.
func (r *PullableReader) syncScratch() {
	if !r.scratchEnds() {
		return
	}
	saved := r.saved
	r.scratch = nil
	r.saved = nil
	r.setBuffer(saved.buf, saved.cursor, saved.limitPos)
}

func (r *PullableReader) Pull(length int) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	if !r.ok() {
		return false
	}
	if r.available() >= length {
		return true
	}
	if r.inScratch() {
		if r.scratchEnds() {
			r.syncScratch()
		} else {
			return r.extendScratch(length)
		}
	}
	if r.backend.PullBehindScratch(r, length) {
		return true
	}
	if !r.ok() {
		return false
	}
	return r.buildScratch(length)
}

// buildScratch copies bytes across one or more backend fragments into a
// fresh scratch buffer of up to length bytes, entering scratch mode. The
// real window is saved so Pull can resume from it once scratch is
// consumed.
func (r *PullableReader) buildScratch(length int) bool {
	startPos := r.pos()
	scratch := make([]byte, 0, length)
	for len(scratch) < length {
		avail := r.available()
		if avail == 0 {
			if !r.backend.PullBehindScratch(r, 1) {
				break
			}
			avail = r.available()
			if avail == 0 {
				break
			}
		}
		want := length - len(scratch)
		if want > avail {
			want = avail
		}
		scratch = append(scratch, r.buf[r.cursor:r.cursor+want]...)
		r.cursor += want
	}
	if len(scratch) == 0 {
		return r.ok() && length == 0
	}
	r.saved = &scratchSave{buf: r.buf, cursor: r.cursor, limitPos: r.limitPos}
	r.scratch = scratch
	r.setBuffer(scratch, 0, startPos+Position(len(scratch)))
	return len(scratch) >= length
}

// extendScratch grows the current (not-yet-fully-consumed) scratch buffer
// to cover a larger Pull request. The bytes already in flight from the
// backend's fragments were already folded into the real (saved) window's
// position when scratch was first built, so extending only needs fresh
// bytes from the backend's current real position.
func (r *PullableReader) extendScratch(length int) bool {
	leftover := append([]byte(nil), r.scratch[r.cursor:]...)
	saved := r.saved
	r.scratch = nil
	r.saved = nil
	r.setBuffer(saved.buf, saved.cursor, saved.limitPos)
	need := length - len(leftover)
	if need <= 0 {
		r.saved = &scratchSave{buf: r.buf, cursor: r.cursor, limitPos: r.limitPos}
		r.scratch = leftover
		r.setBuffer(leftover, 0, r.limitPos)
		return true
	}
	startPos := r.pos()
	scratch := append([]byte(nil), leftover...)
	for len(scratch) < length {
		avail := r.available()
		if avail == 0 {
			if !r.backend.PullBehindScratch(r, 1) {
				break
			}
			avail = r.available()
			if avail == 0 {
				break
			}
		}
		want := length - len(scratch)
		if want > avail {
			want = avail
		}
		scratch = append(scratch, r.buf[r.cursor:r.cursor+want]...)
		r.cursor += want
	}
	r.saved = &scratchSave{buf: r.buf, cursor: r.cursor, limitPos: r.limitPos}
	r.scratch = scratch
	r.setBuffer(scratch, 0, startPos+Position(len(scratch))-Position(len(leftover)))
	return len(scratch) >= length
}

func (r *PullableReader) Read(dst []byte) (int, bool) {
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
		if r.scratchEnds() {
			r.syncScratch()
		}
	}
	return total, true
}

func (r *PullableReader) AppendTo(n int, dst ByteSink) (int, bool) {
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
		if r.scratchEnds() {
			r.syncScratch()
		}
	}
	return total, true
}

func (r *PullableReader) Skip(length int) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	remaining := length
	for remaining > 0 {
		if r.available() == 0 {
			if !r.Pull(1) {
				return false
			}
		}
		n := r.available()
		if n > remaining {
			n = remaining
		}
		r.cursor += n
		remaining -= n
		if r.scratchEnds() {
			r.syncScratch()
		}
	}
	return true
}

func (r *PullableReader) ReadFull(dst []byte) (int, bool) { return r.Read(dst) }

func (r *PullableReader) Buffered() int { return r.available() }

func (r *PullableReader) CopyTo(dst Writer, n int) (Position, bool) { return CopyN(dst, r, Position(n)) }

func (r *PullableReader) Sync(syncType SyncType) bool {
	if r.closed {
		return r.fail(ErrClosed)
	}
	return r.ok()
}

func (r *PullableReader) Pos() Position { return r.pos() }

func (r *PullableReader) Available() int { return r.available() }

func (r *PullableReader) SupportsRandomAccess() bool { return r.backend.SupportsRandomAccess() }
func (r *PullableReader) SupportsRewind() bool       { return r.backend.SupportsRewind() }
func (r *PullableReader) SupportsSize() bool         { return r.backend.SupportsSize() }

func (r *PullableReader) Seek(pos Position) (Position, bool) {
	if r.closed {
		return 0, r.fail(ErrClosed)
	}
	if r.inScratch() {
		// Restore the real window saved when scratch mode was entered
		// before touching startPos/limitPos below: discarding saved
		// without restoring it would leave the reader's position fields
		// describing the orphaned scratch copy, and would lose the
		// backend's unconsumed fragment tail that only `saved` references.
		saved := r.saved
		r.scratch = nil
		r.saved = nil
		r.setBuffer(saved.buf, saved.cursor, saved.limitPos)
	}
	if pos >= r.startPos() && pos <= r.limitPos {
		r.cursor = int(pos - r.startPos())
		return pos, true
	}
	newPos, ok := r.backend.SeekBehindScratch(r, pos)
	if !ok {
		return r.pos(), r.fail(ErrNotSeekable)
	}
	return newPos, true
}

func (r *PullableReader) Size() (Position, bool) {
	if r.closed || !r.backend.SupportsSize() {
		return 0, false
	}
	return r.backend.Size()
}

func (r *PullableReader) Close() bool {
	if r.closed {
		return r.ok()
	}
	r.closed = true
	if !r.backend.CloseBackend() {
		return r.fail(Statusf(CodeUnknown, "backend close failed"))
	}
	return r.ok()
}
