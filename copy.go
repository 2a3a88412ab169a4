// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// Copy copies from src to dst until src reports clean end of stream or
// either side fails. It returns the number of bytes copied and whether
// both src and dst remained OK throughout.
func Copy(dst Writer, src Reader) (Position, bool) {
	return CopyBuffer(dst, src, nil)
}

// CopyBuffer is like Copy but stages data through buf instead of an
// internally allocated one. If buf is nil, a pooled DefaultBufferSize
// buffer is used. CopyBuffer panics if buf has zero length.
func CopyBuffer(dst Writer, src Reader, buf []byte) (Position, bool) {
	if buf != nil && len(buf) == 0 {
		panic("riegio: empty buffer in CopyBuffer")
	}
	if buf == nil {
		var release func()
		buf, release = acquireBuffer(DefaultBufferSize)
		defer release()
	}
	var written Position
	for {
		// Read reports ok=false whenever it delivers fewer than len(buf)
		// bytes, including a full buffer's worth right before clean end of
		// stream; src.OK() is what actually distinguishes that from failure.
		n, ok := src.Read(buf)
		if n > 0 {
			if !dst.Write(buf[:n]) {
				return written, false
			}
			written, _ = addPosition(written, n)
		}
		if !ok {
			return written, src.OK()
		}
	}
}

// CopyN copies exactly n bytes from src to dst. It fails if src reaches
// clean end of stream before n bytes have been copied, mirroring io.CopyN's
// io.ErrUnexpectedEOF.
func CopyN(dst Writer, src Reader, n Position) (Position, bool) {
	if n == 0 {
		return 0, true
	}
	buf, release := acquireBuffer(minInt(intSizeFromPosition(n), DefaultBufferSize))
	defer release()
	var written Position
	for written < n {
		want := n - written
		chunk := buf
		if intSizeFromPosition(want) < len(chunk) {
			chunk = chunk[:intSizeFromPosition(want)]
		}
		nr, ok := src.Read(chunk)
		if nr > 0 {
			if !dst.Write(chunk[:nr]) {
				return written, false
			}
			written, _ = addPosition(written, nr)
		}
		if !ok {
			// Either a real failure, or clean end of stream short of n:
			// either way the caller's exact-length expectation is unmet.
			return written, false
		}
	}
	return written, true
}

// RetryingCopy is Copy for a growing source: a clean "no more bytes right
// now" is not necessarily the end of the stream, so RetryingCopy waits
// with b (a *Backoff; a nil b gets a fresh zero-value one) and tries again,
// up to maxAttempts consecutive reads that make no progress, before giving
// up and returning with ok true (the copy itself did not fail; the source
// simply never produced more bytes within the retry budget).
func RetryingCopy(dst Writer, src Reader, b *Backoff, maxAttempts int) (Position, bool) {
	if b == nil {
		b = &Backoff{}
	}
	buf, release := acquireBuffer(DefaultBufferSize)
	defer release()
	var written Position
	empty := 0
	for {
		n, ok := src.Read(buf)
		if n > 0 {
			if !dst.Write(buf[:n]) {
				return written, false
			}
			written, _ = addPosition(written, n)
		}
		if !ok {
			if !src.OK() {
				return written, false
			}
			if n > 0 {
				empty = 0
				b.Reset()
				continue
			}
			empty++
			if empty >= maxAttempts {
				return written, true
			}
			b.Wait()
			continue
		}
		empty = 0
		b.Reset()
	}
}
