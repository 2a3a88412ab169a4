// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio_test

import (
	"bytes"
	"testing"

	"github.com/go-riegeli/riegio"
)

func TestBufferedReader_SmallBufferForcesRefill(t *testing.T) {
	r := riegio.NewStreamReader(bytes.NewReader([]byte("0123456789")), riegio.WithBufferSize(riegio.MinBufferSize))
	buf := make([]byte, 10)
	n, ok := r.Read(buf)
	if !ok || n != 10 || string(buf) != "0123456789" {
		t.Fatalf("Read = (%d, %v, %q)", n, ok, buf)
	}
	if !r.Close() {
		t.Fatalf("Close failed: %v", r.Status())
	}
}

func TestBufferedReader_SeekBackAndForwardWithinWindow(t *testing.T) {
	r := riegio.NewStreamReader(bytes.NewReader([]byte("abcdefghij")))
	buf := make([]byte, 4)
	if n, ok := r.Read(buf); !ok || n != 4 {
		t.Fatalf("initial Read failed")
	}
	if pos, ok := r.Seek(1); !ok || pos != 1 {
		t.Fatalf("Seek(1) = (%d, %v), want (1, true)", pos, ok)
	}
	if n, ok := r.Read(buf); !ok || n != 4 || string(buf) != "bcde" {
		t.Fatalf("Read after seek back = (%d, %v, %q)", n, ok, buf)
	}
	if pos, ok := r.Seek(8); !ok || pos != 8 {
		t.Fatalf("Seek(8) = (%d, %v), want (8, true)", pos, ok)
	}
	if n, ok := r.Read(buf); ok || n != 2 || string(buf[:2]) != "ij" {
		t.Fatalf("Read after seek forward = (%d, %v, %q), want (2, false, \"ij\")", n, ok, buf[:2])
	}
	if !r.OK() {
		t.Fatalf("clean EOF should leave OK() true")
	}
}

func TestBufferedReader_SkipPastEndOfStreamFails(t *testing.T) {
	r := riegio.NewStreamReader(bytes.NewReader([]byte("abc")))
	if r.Skip(10) {
		t.Fatalf("Skip(10) on a 3-byte stream should succeed in advancing but report false")
	}
	if !r.OK() {
		t.Fatalf("clean EOF should leave OK() true")
	}
	if n, ok := r.Read(make([]byte, 1)); ok || n != 0 {
		t.Fatalf("Read after Skip past end = (%d, %v), want (0, false)", n, ok)
	}
}

func TestBufferedReader_SizeAndSkip(t *testing.T) {
	r := riegio.NewStreamReader(bytes.NewReader([]byte("0123456789")))
	size, ok := r.Size()
	if !ok || size != 10 {
		t.Fatalf("Size() = (%d, %v), want (10, true)", size, ok)
	}
	if !r.Skip(3) {
		t.Fatalf("Skip(3) failed: %v", r.Status())
	}
	buf := make([]byte, 3)
	if n, ok := r.Read(buf); !ok || n != 3 || string(buf) != "345" {
		t.Fatalf("Read after Skip = (%d, %v, %q)", n, ok, buf)
	}
}

func TestBufferedReader_AppendTo(t *testing.T) {
	r := riegio.NewStreamReader(bytes.NewReader([]byte("hello world")))
	var dst bytes.Buffer
	n, ok := r.AppendTo(5, &dst)
	if !ok || n != 5 || dst.String() != "hello" {
		t.Fatalf("AppendTo = (%d, %v, %q)", n, ok, dst.String())
	}
}

func TestBufferedReader_CloseThenOperate(t *testing.T) {
	r := riegio.NewStreamReader(bytes.NewReader([]byte("x")))
	if !r.Close() {
		t.Fatalf("Close failed")
	}
	if _, ok := r.Read(make([]byte, 1)); ok {
		t.Fatalf("Read after Close should fail")
	}
}

// shortReader returns bytes one at a time regardless of dst size, so
// BufferedReader.Pull must loop ReadInternal to fill the requested length.
type shortReader struct {
	data []byte
}

func (s *shortReader) Read(p []byte) (int, error) {
	if len(s.data) == 0 {
		return 0, nil
	}
	p[0] = s.data[0]
	s.data = s.data[1:]
	return 1, nil
}

func TestBufferedReader_PullLoopsOverShortReads(t *testing.T) {
	r := riegio.NewStreamReader(&shortReader{data: []byte("abcdef")})
	if !r.Pull(6) || r.Available() != 6 {
		t.Fatalf("Pull(6) = available %d, want 6: %v", r.Available(), r.Status())
	}
	buf := make([]byte, 6)
	n, ok := r.Read(buf)
	if !ok || n != 6 || string(buf) != "abcdef" {
		t.Fatalf("Read = (%d, %v, %q)", n, ok, buf)
	}
}
