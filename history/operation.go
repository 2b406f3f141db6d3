package history

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dshills/qedit/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// ErrReverseWithoutApply indicates a Delete operation was reversed
// before ever being applied. This is an internal protocol violation:
// an operation reached the undo stack without having been executed.
var ErrReverseWithoutApply = errors.New("reverse before apply")

// Operation represents a single reversible edit. An operation knows how
// to apply itself to a buffer and how to exactly reverse that
// application.
//
// The stack protocol guarantees each operation is applied exactly once
// at creation time and reversed at most once before being discarded.
type Operation interface {
	// Apply performs the edit against the buffer.
	Apply(buf *buffer.Buffer) error

	// Reverse restores the buffer to its state before Apply.
	Reverse(buf *buffer.Buffer) error

	// Description returns a human-readable description of the edit.
	Description() string

	// BytesDelta returns the change in buffer length caused by Apply.
	BytesDelta() int
}

// Insert is an operation that inserts text at a fixed offset.
type Insert struct {
	Pos  ByteOffset
	Text string
}

// NewInsert creates an insert operation.
func NewInsert(pos ByteOffset, text string) *Insert {
	return &Insert{Pos: pos, Text: text}
}

// Apply inserts the text at the recorded offset.
func (op *Insert) Apply(buf *buffer.Buffer) error {
	if _, err := buf.Insert(op.Pos, op.Text); err != nil {
		return fmt.Errorf("insert at offset %d: %w", op.Pos, err)
	}
	return nil
}

// Reverse removes exactly the inserted text. The removed substring is
// discarded; it is known to equal Text under the stack protocol.
func (op *Insert) Reverse(buf *buffer.Buffer) error {
	if _, err := buf.DeleteRange(op.Pos, ByteOffset(len(op.Text))); err != nil {
		return fmt.Errorf("reverse insert at offset %d: %w", op.Pos, err)
	}
	return nil
}

// Description returns a human-readable description.
func (op *Insert) Description() string {
	if utf8.RuneCountInString(op.Text) <= 20 {
		return fmt.Sprintf("Insert %q", op.Text)
	}
	return fmt.Sprintf("Insert %d characters", utf8.RuneCountInString(op.Text))
}

// BytesDelta returns the change in buffer length.
func (op *Insert) BytesDelta() int {
	return len(op.Text)
}

// Delete is an operation that removes a range of text. The removed
// substring is captured by Apply so that Reverse can reinsert it
// byte-for-byte.
type Delete struct {
	Pos    ByteOffset
	Length ByteOffset

	captured string
	applied  bool
}

// NewDelete creates a delete operation. The deleted text is not known
// until Apply runs.
func NewDelete(pos, length ByteOffset) *Delete {
	return &Delete{Pos: pos, Length: length}
}

// Apply removes the range and captures the removed text.
func (op *Delete) Apply(buf *buffer.Buffer) error {
	removed, err := buf.DeleteRange(op.Pos, op.Length)
	if err != nil {
		return fmt.Errorf("delete at range [%d,%d): %w", op.Pos, op.Pos+op.Length, err)
	}
	op.captured = removed
	op.applied = true
	return nil
}

// Reverse reinserts the captured text at the original position.
// Calling Reverse before Apply is a protocol violation and returns
// ErrReverseWithoutApply.
func (op *Delete) Reverse(buf *buffer.Buffer) error {
	if !op.applied {
		return ErrReverseWithoutApply
	}
	if _, err := buf.Insert(op.Pos, op.captured); err != nil {
		return fmt.Errorf("reverse delete at offset %d: %w", op.Pos, err)
	}
	op.applied = false
	return nil
}

// Description returns a human-readable description.
func (op *Delete) Description() string {
	return fmt.Sprintf("Delete %d bytes", op.Length)
}

// BytesDelta returns the change in buffer length.
func (op *Delete) BytesDelta() int {
	return -int(op.Length)
}

// Captured returns the text removed by Apply and whether the operation
// has been applied.
func (op *Delete) Captured() (string, bool) {
	return op.captured, op.applied
}

// Compound groups multiple operations as one undo unit. A replace, for
// example, is a Delete followed by an Insert recorded as a single
// entry, so one undo reverts one user-visible edit.
type Compound struct {
	Name string
	Ops  []Operation
}

// NewCompound creates a compound operation.
func NewCompound(name string, ops ...Operation) *Compound {
	return &Compound{Name: name, Ops: ops}
}

// Apply runs all operations in order. On failure the operations already
// applied are reversed, leaving the buffer as it was before the call.
func (op *Compound) Apply(buf *buffer.Buffer) error {
	for i, sub := range op.Ops {
		if err := sub.Apply(buf); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = op.Ops[j].Reverse(buf)
			}
			return fmt.Errorf("compound %q step %d: %w", op.Name, i, err)
		}
	}
	return nil
}

// Reverse reverses all operations in reverse order.
func (op *Compound) Reverse(buf *buffer.Buffer) error {
	for i := len(op.Ops) - 1; i >= 0; i-- {
		if err := op.Ops[i].Reverse(buf); err != nil {
			return fmt.Errorf("reverse compound %q step %d: %w", op.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound's name.
func (op *Compound) Description() string {
	if op.Name != "" {
		return op.Name
	}
	if len(op.Ops) == 1 {
		return op.Ops[0].Description()
	}
	return fmt.Sprintf("%d operations", len(op.Ops))
}

// BytesDelta returns the total change in buffer length.
func (op *Compound) BytesDelta() int {
	total := 0
	for _, sub := range op.Ops {
		total += sub.BytesDelta()
	}
	return total
}

// Add adds an operation to the compound.
func (op *Compound) Add(sub Operation) {
	op.Ops = append(op.Ops, sub)
}

// IsEmpty returns true if the compound has no operations.
func (op *Compound) IsEmpty() bool {
	return len(op.Ops) == 0
}
