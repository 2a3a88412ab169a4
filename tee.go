// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// TeeReader returns a Reader that behaves like r, except that every byte
// Read or AppendTo returns from it is also written to w — for example to
// checksum or archive a stream as records are decoded from it. If the
// side write to w fails, the read that triggered it fails too, even
// though r itself succeeded; r's own Status is left untouched in that
// case, since r did not fail.
//
// Pull, Skip and the other non-data-producing methods forward to r
// unchanged: Skip advances the cursor without handing bytes to the
// caller, so there is nothing to tee.
func TeeReader(r Reader, w Writer) Reader {
	return &teeReader{Reader: r, w: w}
}

type teeReader struct {
	Reader
	w Writer
}

func (t *teeReader) Read(p []byte) (int, bool) {
	n, ok := t.Reader.Read(p)
	if n > 0 && !t.w.Write(p[:n]) {
		return n, false
	}
	return n, ok
}

func (t *teeReader) AppendTo(n int, dst ByteSink) (int, bool) {
	sink := &teeSink{dst: dst, w: t.w}
	read, ok := t.Reader.AppendTo(n, sink)
	if sink.failed {
		return read, false
	}
	return read, ok
}

// ReadFull and CopyTo are overridden, not merely promoted, so that reads
// they perform still go through Read above and get teed to w.
func (t *teeReader) ReadFull(dst []byte) (int, bool) { return t.Read(dst) }

func (t *teeReader) CopyTo(dst Writer, n int) (Position, bool) { return CopyN(dst, t, Position(n)) }

// teeSink forwards each Write to both the real destination and the tee
// writer, used so AppendTo's single-pass copy still gets teed without
// buffering it twice.
type teeSink struct {
	dst    ByteSink
	w      Writer
	failed bool // set once a write to w fails
}

func (s *teeSink) Write(p []byte) (int, error) {
	n, err := s.dst.Write(p)
	if err != nil {
		return n, err
	}
	if !s.w.Write(p[:n]) {
		s.failed = true
		return n, s.w.Status()
	}
	return n, nil
}

// TeeWriter returns a Writer that duplicates every Write and WriteZeros to
// both primary and tee. A failure on either side fails the call; primary
// is written first, so a tee-side failure still leaves primary caught up.
func TeeWriter(primary, tee Writer) Writer {
	return &teeWriter{Writer: primary, tee: tee}
}

type teeWriter struct {
	Writer
	tee Writer
}

func (t *teeWriter) Write(p []byte) bool {
	if !t.Writer.Write(p) {
		return false
	}
	return t.tee.Write(p)
}

func (t *teeWriter) WriteZeros(length int) bool {
	if !t.Writer.WriteZeros(length) {
		return false
	}
	return t.tee.WriteZeros(length)
}

func (t *teeWriter) Flush(flushType FlushType) bool {
	if !t.Writer.Flush(flushType) {
		return false
	}
	return t.tee.Flush(flushType)
}
