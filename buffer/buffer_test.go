package buffer

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := New()
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestNewFromString(t *testing.T) {
	b := NewFromString("hello")
	if b.String() != "hello" {
		t.Errorf("String() = %q, want %q", b.String(), "hello")
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
}

func TestNewFromReader(t *testing.T) {
	b, err := NewFromReader(strings.NewReader("hello, world"))
	if err != nil {
		t.Fatalf("NewFromReader() error: %v", err)
	}
	if b.String() != "hello, world" {
		t.Errorf("String() = %q, want %q", b.String(), "hello, world")
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		offset  ByteOffset
		text    string
		want    string
		wantEnd ByteOffset
	}{
		{"into empty", "", 0, "hello", "hello", 5},
		{"at start", "world", 0, "hello ", "hello world", 6},
		{"in middle", "helloworld", 5, ", ", "hello, world", 7},
		{"at end", "foo", 3, "bar", "foobar", 6},
		{"empty text", "foo", 1, "", "foo", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.initial)
			end, err := b.Insert(tt.offset, tt.text)
			if err != nil {
				t.Fatalf("Insert() error: %v", err)
			}
			if end != tt.wantEnd {
				t.Errorf("Insert() end = %d, want %d", end, tt.wantEnd)
			}
			if b.String() != tt.want {
				t.Errorf("content = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestInsertOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		offset ByteOffset
	}{
		{"negative", -1},
		{"past end", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("foo")
			rev := b.RevisionID()
			_, err := b.Insert(tt.offset, "x")
			if !errors.Is(err, ErrOffsetOutOfRange) {
				t.Fatalf("Insert() error = %v, want ErrOffsetOutOfRange", err)
			}
			if b.String() != "foo" {
				t.Errorf("buffer changed on failed insert: %q", b.String())
			}
			if b.RevisionID() != rev {
				t.Error("revision changed on failed insert")
			}
		})
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		start       ByteOffset
		length      ByteOffset
		wantRemoved string
		want        string
	}{
		{"middle", "hexxxxllo", 2, 4, "xxxx", "hello"},
		{"at end", "hello", 4, 1, "o", "hell"},
		{"at start", "hello world", 0, 6, "hello ", "world"},
		{"whole buffer", "hello", 0, 5, "hello", ""},
		{"zero length", "hello", 2, 0, "", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.initial)
			removed, err := b.DeleteRange(tt.start, tt.length)
			if err != nil {
				t.Fatalf("DeleteRange() error: %v", err)
			}
			if removed != tt.wantRemoved {
				t.Errorf("removed = %q, want %q", removed, tt.wantRemoved)
			}
			if b.String() != tt.want {
				t.Errorf("content = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestDeleteRangeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		start  ByteOffset
		length ByteOffset
	}{
		{"negative start", -1, 2},
		{"negative length", 1, -1},
		{"overrun", 3, 3},
		{"start past end", 6, 0},
		{"extreme length", 1, math.MaxInt64},
		{"extreme start", math.MaxInt64, 1},
		{"extreme both", math.MaxInt64, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("hello")
			_, err := b.DeleteRange(tt.start, tt.length)
			if !errors.Is(err, ErrRangeInvalid) {
				t.Fatalf("DeleteRange() error = %v, want ErrRangeInvalid", err)
			}
			if b.String() != "hello" {
				t.Errorf("buffer changed on failed delete: %q", b.String())
			}
		})
	}
}

func TestTextRange(t *testing.T) {
	b := NewFromString("hello, world")

	got, err := b.TextRange(7, 12)
	if err != nil {
		t.Fatalf("TextRange() error: %v", err)
	}
	if got != "world" {
		t.Errorf("TextRange(7, 12) = %q, want %q", got, "world")
	}

	if _, err := b.TextRange(5, 20); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("TextRange(5, 20) error = %v, want ErrRangeInvalid", err)
	}
	if _, err := b.TextRange(3, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("TextRange(3, 1) error = %v, want ErrRangeInvalid", err)
	}
}

func TestByteAt(t *testing.T) {
	b := NewFromString("abc")

	if c, ok := b.ByteAt(1); !ok || c != 'b' {
		t.Errorf("ByteAt(1) = %q, %v", c, ok)
	}
	if _, ok := b.ByteAt(3); ok {
		t.Error("ByteAt(3) should be out of range")
	}
	if _, ok := b.ByteAt(-1); ok {
		t.Error("ByteAt(-1) should be out of range")
	}
}

func TestEqualString(t *testing.T) {
	b := NewFromString("hello")
	if !b.EqualString("hello") {
		t.Error("EqualString should match identical content")
	}
	if b.EqualString("hell") {
		t.Error("EqualString should not match different content")
	}
}

func TestEqual(t *testing.T) {
	a := NewFromString("hello")
	b := NewFromString("hello")
	c := NewFromString("other")

	// Same content, different revisions.
	if !a.Equal(b) {
		t.Error("buffers with identical content should be equal")
	}
	if a.Equal(c) {
		t.Error("buffers with different content should not be equal")
	}
}

func TestRevisionChangesOnMutation(t *testing.T) {
	b := NewFromString("hello")
	rev := b.RevisionID()

	if _, err := b.Insert(0, "x"); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	rev2 := b.RevisionID()
	if rev2 == rev {
		t.Error("revision should change after insert")
	}

	if _, err := b.DeleteRange(0, 1); err != nil {
		t.Fatalf("DeleteRange() error: %v", err)
	}
	if b.RevisionID() == rev2 {
		t.Error("revision should change after delete")
	}
}

func TestSnapshot(t *testing.T) {
	b := NewFromString("hello")
	snap := b.Snapshot()

	if _, err := b.Insert(5, ", world"); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}

	if snap.String() != "hello" {
		t.Errorf("snapshot changed after mutation: %q", snap.String())
	}
	if snap.Len() != 5 {
		t.Errorf("snapshot Len() = %d, want 5", snap.Len())
	}
	if snap.RevisionID() == b.RevisionID() {
		t.Error("snapshot revision should differ after mutation")
	}
}
