// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

import "math"

// Position is an offset in a byte stream, counted from its start. Readers
// and Writers expose pos() as a Position; seeking and sizing operate in
// the same unit.
type Position = uint64

// MaxPosition is the largest representable Position. Arithmetic that would
// exceed it saturates rather than wrapping, matching the rest of the
// package's "fail loudly, never silently wrap" stance on overflow.
const MaxPosition Position = math.MaxUint64

// addPosition adds a non-negative length to a Position, saturating at
// MaxPosition instead of wrapping. The bool result reports whether the
// addition was exact; a caller that needs a hard failure on overflow
// should check it and fail with ErrOverflow.
func addPosition(pos Position, length int) (Position, bool) {
	if length < 0 {
		panic("riegio: negative length in addPosition")
	}
	n := Position(length)
	sum := pos + n
	if sum < pos {
		return MaxPosition, false
	}
	return sum, true
}

// subPosition subtracts b from a, clamping at zero instead of wrapping
// (Position is unsigned). The bool result reports whether a >= b.
func subPosition(a, b Position) (Position, bool) {
	if a < b {
		return 0, false
	}
	return a - b, true
}

// intSizeFromPosition converts a byte count expressed as a Position
// difference into an int, saturating to math.MaxInt rather than
// overflowing on 32-bit platforms. Used where a buffer length must be
// represented as a slice index.
func intSizeFromPosition(n Position) int {
	if n > Position(math.MaxInt) {
		return math.MaxInt
	}
	return int(n)
}
