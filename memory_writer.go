// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// MemoryWriterBackend is a BufferedWriterBackend over a growable in-memory
// byte slice, the Go analogue of Riegeli's StringWriter/CordWriter: every
// capability a destination can offer is available, since the whole
// destination lives in the process's own memory.
type MemoryWriterBackend struct {
	data []byte
	// writePos is the offset WriteInternal writes to next; it differs from
	// len(data) after a Seek moved it backward for overwriting.
	writePos int
}

// NewMemoryWriterBackend constructs an empty MemoryWriterBackend.
func NewMemoryWriterBackend() *MemoryWriterBackend {
	return &MemoryWriterBackend{}
}

// Bytes returns the data written so far. The returned slice aliases the
// backend's internal storage and must not be retained past the next write.
func (b *MemoryWriterBackend) Bytes() []byte { return b.data }

func (b *MemoryWriterBackend) WriteInternal(src []byte) bool {
	end := b.writePos + len(src)
	if end > len(b.data) {
		if end > cap(b.data) {
			grown := make([]byte, end, growCap(cap(b.data), end))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}
	copy(b.data[b.writePos:end], src)
	b.writePos = end
	return true
}

func growCap(oldCap, need int) int {
	newCap := oldCap * 2
	if newCap < need {
		newCap = need
	}
	if newCap < MinBufferSize {
		newCap = MinBufferSize
	}
	return newCap
}

func (b *MemoryWriterBackend) SupportsRandomAccess() bool { return true }
func (b *MemoryWriterBackend) SupportsTruncate() bool     { return true }
func (b *MemoryWriterBackend) SupportsReadMode() bool     { return true }
func (b *MemoryWriterBackend) SupportsSize() bool         { return true }

func (b *MemoryWriterBackend) SeekBehindBuffer(pos Position) bool {
	if pos > Position(len(b.data)) {
		return false
	}
	b.writePos = int(pos)
	return true
}

func (b *MemoryWriterBackend) Size() (Position, bool) { return Position(len(b.data)), true }

func (b *MemoryWriterBackend) TruncateBehindBuffer(newSize Position) bool {
	n := int(newSize)
	if n <= len(b.data) {
		b.data = b.data[:n]
	} else {
		grown := make([]byte, n)
		copy(grown, b.data)
		b.data = grown
	}
	if b.writePos > n {
		b.writePos = n
	}
	return true
}

func (b *MemoryWriterBackend) ReadModeBehindBuffer(pos Position) Reader {
	r := NewStringReader(b.data)
	if _, ok := r.Seek(pos); !ok {
		return nil
	}
	return r
}

func (b *MemoryWriterBackend) FlushBackend() bool { return true }
func (b *MemoryWriterBackend) CloseBackend() bool { return true }

// NewMemoryWriter constructs a buffered Writer over an owned in-memory
// byte slice, retrievable via the returned backend's Bytes method.
func NewMemoryWriter(opts ...WriterOption) (*BufferedWriter, *MemoryWriterBackend) {
	backend := NewMemoryWriterBackend()
	return NewBufferedWriter(backend, opts...), backend
}
