// Package history provides the reversible operations and undo stack for
// the qedit engine.
//
// Edits are encapsulated as operations that can be applied to a buffer
// and exactly reversed. Key concepts:
//
// # Operations
//
// Operations implement the Operation interface with Apply and Reverse
// methods. Built-in operations include:
//   - Insert: insert text at an offset
//   - Delete: remove a range, capturing the removed text for reversal
//   - Compound: group multiple operations as one undo unit
//
// A Delete only learns what text it removed when Apply runs; reversing
// a Delete that was never applied returns ErrReverseWithoutApply, which
// signals a bug in the caller's execute path rather than bad input.
//
// # Undo Stack
//
// The Stack records applied operations in execution order and undoes
// them strictly last-in-first-out:
//
//	stack := history.NewStack(1000) // Max 1000 undo entries
//
//	// Apply and record
//	stack.Execute(op, buf)
//
//	// Undo
//	stack.Undo(buf)
//
// A reversed entry is discarded; there is no redo.
//
// # Operation Grouping
//
// Multiple operations can be grouped as a single undo unit:
//
//	stack.BeginGroup("Find and Replace")
//	// ... multiple edits ...
//	stack.EndGroup()
//
// Now all edits undo together with one call.
//
// # Inspection
//
// UndoInfo, PeekUndo, and DebugJSON expose the pending entries for
// display and debugging without consuming them.
package history
