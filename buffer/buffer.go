package buffer

import (
	"bytes"
	"errors"
	"io"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer holds the character sequence under edit and exposes
// position-addressed insert and delete-range primitives. It has no
// knowledge of edit history.
//
// A Buffer is not safe for concurrent use. It is designed to be owned
// exclusively by a single editor; callers that need cross-goroutine
// access must serialize calls externally.
type Buffer struct {
	content    []byte
	revisionID RevisionID
}

// New creates a new empty buffer.
func New() *Buffer {
	return &Buffer{
		revisionID: NewRevisionID(),
	}
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string) *Buffer {
	b := New()
	b.content = []byte(s)
	return b
}

// NewFromReader creates a buffer from an io.Reader.
func NewFromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b := New()
	b.content = data
	return b, nil
}

// Read Operations

// String returns the full buffer content.
func (b *Buffer) String() string {
	return string(b.content)
}

// TextRange returns text in the given byte range [start, end).
func (b *Buffer) TextRange(start, end ByteOffset) (string, error) {
	if start < 0 || start > end || end > ByteOffset(len(b.content)) {
		return "", ErrRangeInvalid
	}
	return string(b.content[start:end]), nil
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.content))
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// ByteAt returns the byte at the given offset.
func (b *Buffer) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || offset >= ByteOffset(len(b.content)) {
		return 0, false
	}
	return b.content[offset], true
}

// EqualString reports whether the buffer content equals s unit-for-unit.
func (b *Buffer) EqualString(s string) bool {
	return string(b.content) == s
}

// Equal reports whether two buffers hold identical content. Revision
// IDs are not compared; only the text matters.
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.content, other.content)
}

// Write Operations

// Insert inserts text immediately before the given offset.
// Returns the end position of the inserted text.
// Fails with ErrOffsetOutOfRange when offset is not in [0, Len()];
// on failure the buffer is unchanged.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	if offset < 0 || offset > ByteOffset(len(b.content)) {
		return 0, ErrOffsetOutOfRange
	}

	updated := make([]byte, 0, len(b.content)+len(text))
	updated = append(updated, b.content[:offset]...)
	updated = append(updated, text...)
	updated = append(updated, b.content[offset:]...)
	b.content = updated
	b.revisionID = NewRevisionID()

	return offset + ByteOffset(len(text)), nil
}

// DeleteRange removes length bytes beginning at start and returns the
// removed substring exactly as it appeared in the buffer.
// Fails with ErrRangeInvalid when start < 0, length < 0, or the range
// overruns the buffer; a range is never truncated to fit. On failure
// the buffer is unchanged.
func (b *Buffer) DeleteRange(start, length ByteOffset) (string, error) {
	// Bounds are checked without summing start+length, which could
	// overflow for extreme arguments.
	if start < 0 || length < 0 || start > ByteOffset(len(b.content)) ||
		length > ByteOffset(len(b.content))-start {
		return "", ErrRangeInvalid
	}

	removed := string(b.content[start : start+length])
	b.content = append(b.content[:start], b.content[start+length:]...)
	b.revisionID = NewRevisionID()

	return removed, nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// Snapshot returns an immutable copy of the current buffer state.
func (b *Buffer) Snapshot() *Snapshot {
	return &Snapshot{
		content:    string(b.content),
		revisionID: b.revisionID,
	}
}
