// Package buffer provides the mutable character sequence at the core of
// the qedit engine. It exposes position-addressed insert and delete-range
// primitives and has no knowledge of edit history.
//
// The buffer package provides:
//
//   - Byte-offset addressed insert and delete operations
//   - Strict range validation: out-of-range positions are rejected, never
//     clamped, and a failed call leaves the buffer unchanged
//   - Exact capture of deleted text, returned by DeleteRange
//   - Revision tracking for change detection
//   - Immutable snapshots
//
// Basic usage:
//
//	// Create a buffer with some text
//	buf := buffer.NewFromString("Hello, World!")
//
//	// Insert text
//	buf.Insert(7, "Beautiful ") // "Hello, Beautiful World!"
//
//	// Delete text, keeping what was removed
//	removed, _ := buf.DeleteRange(0, 7) // removed == "Hello, "
//
// Positions are byte offsets (ByteOffset). A position p is valid for
// insertion when 0 <= p <= Len(); a delete range [start, start+length)
// must lie entirely within the buffer.
//
// A Buffer is not safe for concurrent use. It is owned by a single
// editor; callers needing cross-goroutine access serialize at the
// editor boundary instead.
package buffer
