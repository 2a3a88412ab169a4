// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-riegeli/riegio"
)

func TestFileAdapter_WriteThenReadBack(t *testing.T) {
	w, _ := riegio.NewMemoryWriter()
	f := riegio.NewFileAdapter(w)
	if _, err := f.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0) failed: %v", err)
	}
	buf := make([]byte, 5)
	n, err := f.Read(buf)
	if err != nil || n != 5 || string(buf) != "hello" {
		t.Fatalf("Read = (%d, %v, %q)", n, err, buf)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestFileAdapter_WriteAfterReadResumesAtReadPosition(t *testing.T) {
	w, backend := riegio.NewMemoryWriter()
	f := riegio.NewFileAdapter(w)
	f.Write([]byte("0123456789"))
	f.Seek(2, io.SeekStart)
	readBuf := make([]byte, 3)
	f.Read(readBuf) // now positioned at 5
	if _, err := f.Write([]byte("XYZ")); err != nil {
		t.Fatalf("Write after Read failed: %v", err)
	}
	f.Close()
	if got := string(backend.Bytes()); got != "01234XYZ89" {
		t.Fatalf("Bytes() = %q, want %q", got, "01234XYZ89")
	}
}

func TestFileAdapter_SeekCurrentPositionAlwaysSucceeds(t *testing.T) {
	var dst bytes.Buffer
	w := riegio.NewStreamWriter(&dst)
	f := riegio.NewFileAdapter(w)
	f.Write([]byte("abc"))
	pos, err := f.Seek(3, io.SeekStart)
	if err != nil || pos != 3 {
		t.Fatalf("Seek to current position on a non-seekable writer should succeed, got (%d, %v)", pos, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err == nil {
		t.Fatalf("Seek to a different position on a non-seekable writer should fail")
	}
}

func TestFileAdapter_SeekEndUsesWriterSize(t *testing.T) {
	w, _ := riegio.NewMemoryWriter()
	f := riegio.NewFileAdapter(w)
	f.Write([]byte("0123456789"))
	pos, err := f.Seek(-3, io.SeekEnd)
	if err != nil || pos != 7 {
		t.Fatalf("Seek(-3, SeekEnd) = (%d, %v), want (7, nil)", pos, err)
	}
	buf := make([]byte, 3)
	n, err := f.Read(buf)
	if err != nil || n != 3 || string(buf) != "789" {
		t.Fatalf("Read after SeekEnd = (%d, %v, %q)", n, err, buf)
	}
}
