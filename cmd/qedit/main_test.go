package main

import (
	"testing"

	"github.com/dshills/qedit/editor"
)

func TestPrevRuneLen(t *testing.T) {
	tests := []struct {
		name string
		text string
		cur  editor.ByteOffset
		want editor.ByteOffset
	}{
		{"ascii", "abc", 3, 1},
		{"two-byte rune", "aé", 3, 2},
		{"three-byte rune", "a€", 4, 3},
		{"four-byte rune", "a\U0001F600", 5, 4},
		{"mid buffer", "aéb", 3, 2},
		{"at start", "abc", 0, 0},
		{"empty", "", 0, 0},
		{"past end", "abc", 5, 0},
		{"malformed tail", "a\xff", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prevRuneLen(tt.text, tt.cur); got != tt.want {
				t.Errorf("prevRuneLen(%q, %d) = %d, want %d", tt.text, tt.cur, got, tt.want)
			}
		})
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	ed := editor.New(editor.WithContent("héllo"))
	cur := ed.Len()

	// Erase "o" then "l" then "l" then "é": each backspace removes one
	// rune, stepping cur back by its byte width.
	wantAfter := []string{"héll", "hél", "hé", "h"}
	for _, want := range wantAfter {
		n := prevRuneLen(ed.Text(), cur)
		if n == 0 {
			t.Fatal("prevRuneLen returned 0 mid-buffer")
		}
		if err := ed.Delete(cur-n, n); err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		cur -= n
		if ed.Text() != want {
			t.Fatalf("Text() = %q, want %q", ed.Text(), want)
		}
	}
}

func TestCursorPosition(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		cur   editor.ByteOffset
		wantX int
		wantY int
	}{
		{"empty", "", 0, 0, 0},
		{"first line", "hello", 3, 3, 0},
		{"line start after newline", "ab\ncd", 3, 0, 1},
		{"second line middle", "ab\ncd", 4, 1, 1},
		{"clamped past end", "ab", 10, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cursorPosition(tt.text, tt.cur)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("cursorPosition(%q, %d) = (%d, %d), want (%d, %d)",
					tt.text, tt.cur, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
