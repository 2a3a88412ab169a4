// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

import "io"

// StreamWriterBackend adapts an io.Writer (optionally io.Seeker,
// io.Closer) into a BufferedWriterBackend, the write-side counterpart of
// StreamReaderBackend: a destination whose capabilities are decided by
// which of those interfaces it implements.
type StreamWriterBackend struct {
	dst    io.Writer
	seeker io.Seeker

	randomAccess lazyBool
	lastErr      error
}

// NewStreamWriterBackend wraps dst. Random access and read mode need dst
// to implement io.Seeker (read mode also io.Reader); truncation needs a
// Truncate(int64) error method.
func NewStreamWriterBackend(dst io.Writer) *StreamWriterBackend {
	b := &StreamWriterBackend{dst: dst}
	if s, ok := dst.(io.Seeker); ok {
		b.seeker = s
	}
	return b
}

func (b *StreamWriterBackend) WriteInternal(src []byte) bool {
	_, err := b.dst.Write(src)
	if err != nil {
		b.lastErr = err
		return false
	}
	return true
}

// failureStatus reports the errno-classified Status for the most recent
// WriteInternal failure, letting BufferedWriter surface a precise code
// instead of a generic CodeUnknown.
func (b *StreamWriterBackend) failureStatus() Status { return statusFromErr(b.lastErr) }

func (b *StreamWriterBackend) SupportsRandomAccess() bool {
	return b.randomAccess.get(func() bool { return b.seeker != nil })
}

func (b *StreamWriterBackend) SupportsTruncate() bool {
	if t, ok := b.dst.(interface{ Truncate(int64) error }); ok {
		_ = t
		return true
	}
	return false
}

func (b *StreamWriterBackend) SupportsReadMode() bool {
	_, ok := b.dst.(io.Reader)
	return ok && b.seeker != nil
}

func (b *StreamWriterBackend) SupportsSize() bool { return false }

func (b *StreamWriterBackend) SeekBehindBuffer(pos Position) bool {
	if b.seeker == nil {
		return false
	}
	_, err := b.seeker.Seek(int64(pos), io.SeekStart)
	return err == nil
}

func (b *StreamWriterBackend) Size() (Position, bool) { return 0, false }

func (b *StreamWriterBackend) TruncateBehindBuffer(newSize Position) bool {
	t, ok := b.dst.(interface{ Truncate(int64) error })
	if !ok {
		return false
	}
	return t.Truncate(int64(newSize)) == nil
}

func (b *StreamWriterBackend) ReadModeBehindBuffer(pos Position) Reader {
	r, ok := b.dst.(io.Reader)
	if !ok || b.seeker == nil {
		return nil
	}
	if !b.SeekBehindBuffer(pos) {
		return nil
	}
	return NewStreamReader(r)
}

func (b *StreamWriterBackend) FlushBackend() bool {
	if f, ok := b.dst.(interface{ Sync() error }); ok {
		return f.Sync() == nil
	}
	return true
}

func (b *StreamWriterBackend) CloseBackend() bool {
	b.randomAccess.collapse()
	if c, ok := b.dst.(io.Closer); ok {
		return c.Close() == nil
	}
	return true
}

// NewStreamWriter constructs a buffered Writer over an arbitrary
// io.Writer, applying WriterOptions for buffer sizing and size hints.
func NewStreamWriter(dst io.Writer, opts ...WriterOption) *BufferedWriter {
	return NewBufferedWriter(NewStreamWriterBackend(dst), opts...)
}
