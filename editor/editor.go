package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/dshills/qedit/buffer"
	"github.com/dshills/qedit/history"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Operation is a reversible edit record.
	Operation = history.Operation

	// OperationInfo describes a recorded operation.
	OperationInfo = history.OperationInfo
)

// Editor is the main facade for the text-editing engine. It owns
// exactly one buffer and one undo stack for its lifetime; every
// mutation flows through a reversible operation that is recorded for
// undo, so there is no path that edits the buffer behind the history's
// back.
//
// An Editor is not safe for concurrent use; wrap it in a Synced when
// calls may come from multiple goroutines.
type Editor struct {
	buf  *buffer.Buffer
	hist *history.Stack
	id   uuid.UUID

	// Configuration
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
}

// New creates a new Editor with the given options.
func New(opts ...Option) *Editor {
	e := &Editor{
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.initContent != "" {
		e.buf = buffer.NewFromString(e.initContent)
	} else {
		e.buf = buffer.New()
	}
	e.hist = history.NewStack(e.maxUndoEntries)
	e.id = uuid.New()

	return e
}

// NewFromReader creates an Editor from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Editor, error) {
	e := &Editor{
		maxUndoEntries: DefaultMaxUndoEntries,
	}

	for _, opt := range opts {
		opt(e)
	}

	var err error
	e.buf, err = buffer.NewFromReader(r)
	if err != nil {
		return nil, err
	}
	e.hist = history.NewStack(e.maxUndoEntries)
	e.id = uuid.New()

	return e, nil
}

// Edit Operations

// Insert inserts text immediately before the given offset and records
// the edit for undo. A failed insert records nothing and leaves the
// buffer unchanged.
func (e *Editor) Insert(at ByteOffset, text string) error {
	if e.readOnly {
		return ErrReadOnly
	}

	return e.execute(history.NewInsert(at, text))
}

// Delete removes length bytes beginning at the given offset and records
// the edit for undo. The removed text is captured by the recorded
// operation so undo restores it byte-for-byte. A failed delete records
// nothing and leaves the buffer unchanged.
func (e *Editor) Delete(at, length ByteOffset) error {
	if e.readOnly {
		return ErrReadOnly
	}

	return e.execute(history.NewDelete(at, length))
}

// Append inserts text at the end of the buffer. Equivalent to
// Insert(Len(), text).
func (e *Editor) Append(text string) error {
	if e.readOnly {
		return ErrReadOnly
	}

	return e.execute(history.NewInsert(e.buf.Len(), text))
}

// Replace substitutes length bytes at the given offset with text. It is
// composed of a delete followed by an insert but recorded as a single
// history entry, so one Undo reverts the whole replacement.
func (e *Editor) Replace(at, length ByteOffset, text string) error {
	if e.readOnly {
		return ErrReadOnly
	}

	return e.execute(history.NewCompound("Replace",
		history.NewDelete(at, length),
		history.NewInsert(at, text),
	))
}

// execute applies an operation and records it. All edit operations
// funnel through here, so a new operation kind needs no editor changes.
func (e *Editor) execute(op Operation) error {
	return e.hist.Execute(op, e.buf)
}

// Undo Operations

// Undo reverses the most recent not-yet-undone edit and reports whether
// anything was undone. Calling Undo with an empty history is a defined
// no-op, not an error: interactive callers invoke undo speculatively.
//
// A reversal that fails for any other reason panics: it means an
// operation reached the stack without having been applied, which the
// execute path makes impossible, so the history no longer describes
// the buffer.
func (e *Editor) Undo() bool {
	if err := e.hist.Undo(e.buf); err != nil {
		if errors.Is(err, history.ErrNothingToUndo) {
			return false
		}
		panic(fmt.Sprintf("qedit: undo protocol violation: %v", err))
	}
	return true
}

// CanUndo returns true if undo is available.
func (e *Editor) CanUndo() bool {
	return e.hist.CanUndo()
}

// UndoDepth returns the number of available undo operations.
func (e *Editor) UndoDepth() int {
	return e.hist.Depth()
}

// PeekUndo returns info about the next undo operation without
// consuming it.
func (e *Editor) PeekUndo() (OperationInfo, bool) {
	return e.hist.PeekUndo()
}

// UndoInfo returns info about all pending undo operations, oldest
// first.
func (e *Editor) UndoInfo() []OperationInfo {
	return e.hist.UndoInfo()
}

// ClearHistory removes all undo history.
func (e *Editor) ClearHistory() {
	e.hist.Clear()
}

// BeginUndoGroup starts a new undo group. All edits until EndUndoGroup
// are undone as a single unit.
func (e *Editor) BeginUndoGroup(name string) {
	e.hist.BeginGroup(name)
}

// EndUndoGroup ends the current undo group.
func (e *Editor) EndUndoGroup() {
	e.hist.EndGroup()
}

// CancelUndoGroup cancels the current undo group without recording it.
func (e *Editor) CancelUndoGroup() {
	e.hist.CancelGroup()
}

// Read Operations

// Text returns the current buffer content.
func (e *Editor) Text() string {
	return e.buf.String()
}

// Len returns the buffer length in bytes.
func (e *Editor) Len() ByteOffset {
	return e.buf.Len()
}

// IsEmpty returns true if the buffer is empty.
func (e *Editor) IsEmpty() bool {
	return e.buf.IsEmpty()
}

// EqualString reports whether the buffer content equals s.
func (e *Editor) EqualString(s string) bool {
	return e.buf.EqualString(s)
}

// ReadOnly returns true if the editor rejects edits.
func (e *Editor) ReadOnly() bool {
	return e.readOnly
}

// ID returns the editor's unique identifier.
func (e *Editor) ID() string {
	return e.id.String()
}

// DebugJSON renders the editor state, including the pending undo
// entries, as a JSON document for inspection.
func (e *Editor) DebugJSON() string {
	out, _ := sjson.Set("{}", "editorID", e.id.String())
	out, _ = sjson.Set(out, "bufferLen", e.buf.Len())
	out, _ = sjson.Set(out, "readOnly", e.readOnly)
	out, _ = sjson.SetRaw(out, "history", e.hist.DebugJSON())
	return out
}
