// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package riegio provides the buffered byte-stream reader/writer core that
// record-oriented binary formats are built on: a pull-model Reader with a
// caller-visible cursor/buffer window, a push-model Writer with the
// symmetric contract, buffered templates implementing both contracts on top
// of "fill N bytes" / "drain these bytes" primitives, and a scratch-buffer
// mixin that lets a reader hand out a contiguous view spanning a boundary
// its underlying source cannot itself serve contiguously.
//
// riegio is single-threaded per instance: no method on a given Reader or
// Writer may be called concurrently with another method on the same
// instance. Concurrency across independent instances is the caller's
// business, same as with bufio.
//
// Every fallible operation returns a boolean alongside any data, with
// details retrievable via Status(). End-of-stream is not a failure: Pull
// returns false with OK() still true. See Status and Code for the error
// taxonomy.
package riegio
