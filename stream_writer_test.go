// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio_test

import (
	"bytes"
	"testing"

	"github.com/go-riegeli/riegio"
)

func TestStreamWriter_PlainWriterHasNoOptionalCapabilities(t *testing.T) {
	var dst bytes.Buffer
	w := riegio.NewStreamWriter(&dst)
	if w.SupportsRandomAccess() {
		t.Fatalf("a bytes.Buffer destination must not support random access")
	}
	if w.SupportsTruncate() {
		t.Fatalf("a bytes.Buffer destination must not support truncate")
	}
	if w.SupportsReadMode() {
		t.Fatalf("a bytes.Buffer destination must not support read mode")
	}
	if _, ok := w.Size(); ok {
		t.Fatalf("StreamWriterBackend never reports a known size")
	}
}

// syncingWriter records whether Sync was called, for verifying that
// Flush(FlushFromProcess) reaches the destination's own durability hook
// while Flush(FlushFromObject) does not.
type syncingWriter struct {
	bytes.Buffer
	synced bool
}

func (s *syncingWriter) Sync() error {
	s.synced = true
	return nil
}

func TestStreamWriter_FlushFromProcessSyncsDestination(t *testing.T) {
	dst := &syncingWriter{}
	w := riegio.NewStreamWriter(dst)
	w.Write([]byte("data"))
	if !w.Flush(riegio.FlushFromObject) {
		t.Fatalf("Flush(FlushFromObject) failed")
	}
	if dst.synced {
		t.Fatalf("FlushFromObject must not sync the destination")
	}
	if !w.Flush(riegio.FlushFromProcess) {
		t.Fatalf("Flush(FlushFromProcess) failed")
	}
	if !dst.synced {
		t.Fatalf("FlushFromProcess must sync a destination that supports it")
	}
}
