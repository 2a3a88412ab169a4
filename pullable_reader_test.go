// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio_test

import (
	"testing"

	"github.com/go-riegeli/riegio"
)

// fragmentedBackend serves data one fragment at a time, never bridging a
// boundary itself, so PullableReader is forced to build a scratch buffer
// whenever a Pull spans two fragments.
type fragmentedBackend struct {
	frags [][]byte
	idx   int
	pos   riegio.Position
}

func (b *fragmentedBackend) PullBehindScratch(r *riegio.PullableReader, length int) bool {
	if b.idx >= len(b.frags) {
		return false
	}
	frag := b.frags[b.idx]
	b.idx++
	r.SetBuffer(frag, 0, b.pos+riegio.Position(len(frag)))
	b.pos += riegio.Position(len(frag))
	return len(frag) >= length
}

func (b *fragmentedBackend) SupportsRandomAccess() bool { return false }
func (b *fragmentedBackend) SupportsRewind() bool       { return false }
func (b *fragmentedBackend) SupportsSize() bool         { return true }
func (b *fragmentedBackend) SeekBehindScratch(r *riegio.PullableReader, pos riegio.Position) (riegio.Position, bool) {
	return 0, false
}
func (b *fragmentedBackend) Size() (riegio.Position, bool) {
	var total riegio.Position
	for _, f := range b.frags {
		total += riegio.Position(len(f))
	}
	return total, true
}
func (b *fragmentedBackend) CloseBackend() bool { return true }

func newFragmentedReader(frags ...string) *riegio.PullableReader {
	backend := &fragmentedBackend{}
	for _, f := range frags {
		backend.frags = append(backend.frags, []byte(f))
	}
	return riegio.NewPullableReader(backend)
}

func TestPullableReader_PullAcrossFragmentBoundary(t *testing.T) {
	r := newFragmentedReader("ab", "cd", "ef")
	if !r.Pull(3) {
		t.Fatalf("Pull(3) should bridge the ab|cd boundary via scratch")
	}
	if r.Available() < 3 {
		t.Fatalf("Available() = %d after Pull(3), want >= 3", r.Available())
	}
	buf := make([]byte, 3)
	n, ok := r.Read(buf)
	if !ok || n != 3 || string(buf) != "abc" {
		t.Fatalf("Read = (%d, %v, %q), want (3, true, %q)", n, ok, buf, "abc")
	}
}

func TestPullableReader_ReadPastScratchResumesRealWindow(t *testing.T) {
	r := newFragmentedReader("a", "bcdef")
	if !r.Pull(2) {
		t.Fatalf("Pull(2) across 'a'|'bcdef' should succeed")
	}
	buf := make([]byte, 6)
	n, ok := r.Read(buf)
	if !ok || n != 6 || string(buf) != "abcdef" {
		t.Fatalf("Read = (%d, %v, %q)", n, ok, buf)
	}
}

func TestPullableReader_EOFAfterLastFragment(t *testing.T) {
	r := newFragmentedReader("xy")
	buf := make([]byte, 10)
	n, ok := r.Read(buf)
	if ok || n != 2 {
		t.Fatalf("Read = (%d, %v), want (2, false)", n, ok)
	}
	if !r.OK() {
		t.Fatalf("clean end of fragments must leave OK() true")
	}
}

func TestPullableReader_SkipPastEndOfStreamFails(t *testing.T) {
	r := newFragmentedReader("abc", "def")
	if r.Skip(10) {
		t.Fatalf("Skip(10) across only 6 available bytes should report false")
	}
	if !r.OK() {
		t.Fatalf("clean end of fragments should leave OK() true")
	}
}

func TestPullableReader_SeekWhileScratchActivePreservesBackendTail(t *testing.T) {
	r := newFragmentedReader("ab", "cd", "ef")
	// Pull(3) spans the "ab"|"cd" boundary, forcing a scratch buffer built
	// from only the first byte of "cd": the saved real window still holds
	// the unconsumed "d", and the backend still has "ef" unpulled.
	if !r.Pull(3) {
		t.Fatalf("Pull(3) should bridge the ab|cd boundary via scratch")
	}
	if newPos, ok := r.Seek(3); !ok || newPos != 3 {
		t.Fatalf("Seek(3) = (%d, %v), want (3, true)", newPos, ok)
	}
	rest := make([]byte, 3)
	n, ok := r.Read(rest)
	if !ok || n != 3 || string(rest) != "def" {
		t.Fatalf("Read after Seek = (%d, %v, %q), want (3, true, %q)", n, ok, rest, "def")
	}
}

func TestPullableReader_Skip(t *testing.T) {
	r := newFragmentedReader("abc", "def")
	if !r.Skip(4) {
		t.Fatalf("Skip(4) should succeed across the boundary")
	}
	buf := make([]byte, 2)
	n, ok := r.Read(buf)
	if !ok || n != 2 || string(buf) != "ef" {
		t.Fatalf("Read after Skip = (%d, %v, %q), want (2, true, %q)", n, ok, buf, "ef")
	}
}
