// Package editor provides the main facade for the qedit text-editing
// engine. It combines a buffer and an undo stack into a small,
// in-process API: every edit is applied through a reversible operation
// and recorded, so the most recent edits can always be stepped back in
// strict LIFO order.
//
// # Basic Usage
//
// Create an editor and perform basic edits:
//
//	e := editor.New(editor.WithContent("hello"))
//
//	e.Append(", world") // "hello, world"
//	e.Delete(5, 7)      // "hello"
//	e.Undo()            // "hello, world"
//
// Undo on an empty history is a defined no-op:
//
//	e := editor.New()
//	e.Undo() // returns false, buffer untouched
//
// # Failure Atomicity
//
// An edit that fails validation has no effect at all: the buffer is
// unchanged and nothing is recorded. Positions are never clamped,
// since a clamped edit could not be exactly reversed.
//
//	e := editor.New(editor.WithContent("abc"))
//	err := e.Insert(10, "x") // ErrOffsetOutOfRange, "abc" intact
//
// # Undo Groups
//
// Multiple edits can be recorded as one undo unit:
//
//	e.BeginUndoGroup("reformat")
//	// ... several edits ...
//	e.EndUndoGroup()
//	e.Undo() // reverts all of them
//
// # Concurrency
//
// An Editor is single-threaded by design; no internal locking is
// performed. Synced wraps an Editor with a mutex for callers that need
// to share one across goroutines.
package editor
