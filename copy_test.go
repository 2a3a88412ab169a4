// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio_test

import (
	"testing"
	"time"

	"github.com/go-riegeli/riegio"
)

func TestCopy_WholeStream(t *testing.T) {
	src := riegio.NewStringReader([]byte("the quick brown fox"))
	dst, backend := riegio.NewMemoryWriter()
	n, ok := riegio.Copy(dst, src)
	if !ok || n != 19 {
		t.Fatalf("Copy = (%d, %v), want (19, true)", n, ok)
	}
	dst.Close()
	if got := string(backend.Bytes()); got != "the quick brown fox" {
		t.Fatalf("Bytes() = %q", got)
	}
}

func TestCopyBuffer_UsesGivenBuffer(t *testing.T) {
	src := riegio.NewStringReader([]byte("abcdefghij"))
	dst, backend := riegio.NewMemoryWriter()
	buf := make([]byte, 3) // forces several Read/Write round trips
	n, ok := riegio.CopyBuffer(dst, src, buf)
	if !ok || n != 10 {
		t.Fatalf("CopyBuffer = (%d, %v), want (10, true)", n, ok)
	}
	dst.Close()
	if got := string(backend.Bytes()); got != "abcdefghij" {
		t.Fatalf("Bytes() = %q", got)
	}
}

func TestCopyBuffer_PanicsOnEmptyBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("CopyBuffer with an empty non-nil buffer should panic")
		}
	}()
	src := riegio.NewStringReader([]byte("x"))
	dst, _ := riegio.NewMemoryWriter()
	riegio.CopyBuffer(dst, src, []byte{})
}

func TestCopyN_ExactLength(t *testing.T) {
	src := riegio.NewStringReader([]byte("0123456789"))
	dst, backend := riegio.NewMemoryWriter()
	n, ok := riegio.CopyN(dst, src, 5)
	if !ok || n != 5 {
		t.Fatalf("CopyN = (%d, %v), want (5, true)", n, ok)
	}
	dst.Close()
	if got := string(backend.Bytes()); got != "01234" {
		t.Fatalf("Bytes() = %q, want %q", got, "01234")
	}
}

func TestCopyN_ShortSourceFails(t *testing.T) {
	src := riegio.NewStringReader([]byte("abc"))
	dst, _ := riegio.NewMemoryWriter()
	n, ok := riegio.CopyN(dst, src, 10)
	if ok {
		t.Fatalf("CopyN past clean end of stream should report ok=false")
	}
	if n != 3 {
		t.Fatalf("CopyN short = %d, want 3 bytes actually copied", n)
	}
}

func TestRetryingCopy_GivesUpAfterMaxAttempts(t *testing.T) {
	src := riegio.NewStringReader(nil)
	dst, _ := riegio.NewMemoryWriter()
	b := &riegio.Backoff{}
	b.SetBase(time.Microsecond)
	b.SetMax(time.Microsecond)
	n, ok := riegio.RetryingCopy(dst, src, b, 3)
	if !ok || n != 0 {
		t.Fatalf("RetryingCopy on an empty source = (%d, %v), want (0, true)", n, ok)
	}
}

func TestRetryingCopy_CopiesAvailableData(t *testing.T) {
	src := riegio.NewStringReader([]byte("data"))
	dst, backend := riegio.NewMemoryWriter()
	b := &riegio.Backoff{}
	b.SetBase(time.Microsecond)
	b.SetMax(time.Microsecond)
	n, ok := riegio.RetryingCopy(dst, src, b, 2)
	if !ok || n != 4 {
		t.Fatalf("RetryingCopy = (%d, %v), want (4, true)", n, ok)
	}
	dst.Close()
	if got := string(backend.Bytes()); got != "data" {
		t.Fatalf("Bytes() = %q", got)
	}
}
