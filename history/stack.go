package history

import (
	"errors"
	"time"

	"github.com/dshills/qedit/buffer"
)

// ErrNothingToUndo indicates the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// DefaultMaxEntries is the undo stack cap when none is configured.
const DefaultMaxEntries = 1000

// undoEntry wraps an operation with metadata.
type undoEntry struct {
	op        Operation
	timestamp time.Time
}

// Stack is the ordered record of applied operations awaiting possible
// undo. Entries are consumed strictly LIFO; a reversed entry is
// discarded. There is no redo.
//
// A Stack is not safe for concurrent use; callers serialize at the
// editor boundary.
type Stack struct {
	undoStack []*undoEntry

	// Grouping state
	grouping  bool
	groupName string
	groupOps  []Operation

	maxEntries int
}

// NewStack creates a new undo stack.
func NewStack(maxEntries int) *Stack {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Stack{
		maxEntries: maxEntries,
	}
}

// Execute applies an operation and records it. If Apply fails nothing
// is recorded and the buffer is unchanged.
func (s *Stack) Execute(op Operation, buf *buffer.Buffer) error {
	if err := op.Apply(buf); err != nil {
		return err
	}

	s.Push(op)
	return nil
}

// Push records an already-applied operation.
func (s *Stack) Push(op Operation) {
	if s.grouping {
		s.groupOps = append(s.groupOps, op)
		return
	}

	s.push(op)
}

func (s *Stack) push(op Operation) {
	s.undoStack = append(s.undoStack, &undoEntry{
		op:        op,
		timestamp: time.Now(),
	})

	// Enforce max entries
	if len(s.undoStack) > s.maxEntries {
		excess := len(s.undoStack) - s.maxEntries
		s.undoStack = s.undoStack[excess:]
	}
}

// Undo reverses the most recently recorded operation and discards it.
// Returns ErrNothingToUndo when the stack is empty. If the reversal
// itself fails the entry is restored so the stack stays consistent.
func (s *Stack) Undo(buf *buffer.Buffer) error {
	if len(s.undoStack) == 0 {
		return ErrNothingToUndo
	}

	entry := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]

	if err := entry.op.Reverse(buf); err != nil {
		s.undoStack = append(s.undoStack, entry)
		return err
	}

	return nil
}

// CanUndo returns true if undo is available.
func (s *Stack) CanUndo() bool {
	return len(s.undoStack) > 0
}

// Depth returns the number of undo operations available.
func (s *Stack) Depth() int {
	return len(s.undoStack)
}

// BeginGroup starts an operation group. Operations pushed while
// grouping are combined into a single undo unit.
func (s *Stack) BeginGroup(name string) {
	if s.grouping {
		// Already grouping, ignore nested calls
		return
	}

	s.grouping = true
	s.groupName = name
	s.groupOps = nil
}

// EndGroup finishes an operation group. All operations since BeginGroup
// are combined into a single Compound entry.
func (s *Stack) EndGroup() {
	if !s.grouping {
		return
	}

	s.grouping = false

	if len(s.groupOps) == 0 {
		s.groupOps = nil
		return
	}

	s.push(&Compound{
		Name: s.groupName,
		Ops:  s.groupOps,
	})
	s.groupOps = nil
}

// CancelGroup abandons a group without recording it.
// Note: operations already executed still affect the buffer.
func (s *Stack) CancelGroup() {
	s.grouping = false
	s.groupOps = nil
}

// IsGrouping returns true if currently in an operation group.
func (s *Stack) IsGrouping() bool {
	return s.grouping
}

// Clear removes all undo history.
func (s *Stack) Clear() {
	s.undoStack = nil
	s.grouping = false
	s.groupOps = nil
}

// UndoInfo returns info about all pending undo operations, oldest
// first.
func (s *Stack) UndoInfo() []OperationInfo {
	result := make([]OperationInfo, len(s.undoStack))
	for i, entry := range s.undoStack {
		result[i] = OperationInfo{
			Description: entry.op.Description(),
			Timestamp:   entry.timestamp,
			BytesDelta:  entry.op.BytesDelta(),
		}
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing
// it.
func (s *Stack) PeekUndo() (OperationInfo, bool) {
	if len(s.undoStack) == 0 {
		return OperationInfo{}, false
	}

	entry := s.undoStack[len(s.undoStack)-1]
	return OperationInfo{
		Description: entry.op.Description(),
		Timestamp:   entry.timestamp,
		BytesDelta:  entry.op.BytesDelta(),
	}, true
}

// SetMaxEntries changes the maximum number of undo entries. If the
// current stack is larger, oldest entries are removed.
func (s *Stack) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	s.maxEntries = max

	if len(s.undoStack) > max {
		excess := len(s.undoStack) - max
		s.undoStack = s.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (s *Stack) MaxEntries() int {
	return s.maxEntries
}
