// Copyright 2026 The riegio Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package riegio

// FlushType selects what durability domain Writer.Flush targets: pushing
// buffered data out of this process (surviving a crash of the calling
// process but not necessarily the machine), or all the way through the OS
// (surviving a machine crash too, at whatever cost that destination's own
// sync primitive charges).
type FlushType uint8

const (
	// FlushFromObject pushes data out of the Writer's own buffer to its
	// destination, without asking the destination to sync to stable
	// storage. Always the cheaper option; the default when a caller just
	// calls Flush with no type in mind.
	FlushFromObject FlushType = iota
	// FlushFromProcess additionally asks the destination to sync to
	// stable storage (os.File.Sync, fsync, or equivalent), when the
	// backend supports it.
	FlushFromProcess
)

// SyncType is the Reader-side counterpart of FlushType: it selects what a
// call to Sync should refresh. The readers in this package cache nothing
// for Sync to refresh, so they treat both values alike.
type SyncType uint8

const (
	// SyncFromObject re-checks whatever this Reader's own backend can
	// cheaply re-check (e.g. a growing source's current size) without
	// assuming anything changed outside this process.
	SyncFromObject SyncType = iota
	// SyncFromProcess additionally assumes data written by another
	// process may have become visible and re-probes accordingly.
	SyncFromProcess
)
