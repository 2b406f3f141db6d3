package editor

import "sync"

// Synced wraps an Editor with a read-write mutex, serializing every
// call. The core engine assumes a stable buffer between validation and
// mutation (a delete captures text as it applies), so cross-goroutine
// callers serialize whole editor calls rather than individual buffer
// steps.
type Synced struct {
	mu sync.RWMutex
	ed *Editor
}

// NewSynced creates a synchronized editor with the given options.
func NewSynced(opts ...Option) *Synced {
	return &Synced{ed: New(opts...)}
}

// Sync wraps an existing editor. The caller must not continue using
// the wrapped editor directly.
func Sync(ed *Editor) *Synced {
	return &Synced{ed: ed}
}

// Insert inserts text at the given offset.
func (s *Synced) Insert(at ByteOffset, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Insert(at, text)
}

// Delete removes length bytes at the given offset.
func (s *Synced) Delete(at, length ByteOffset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Delete(at, length)
}

// Append inserts text at the end of the buffer.
func (s *Synced) Append(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Append(text)
}

// Replace substitutes length bytes at the given offset with text.
func (s *Synced) Replace(at, length ByteOffset, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Replace(at, length, text)
}

// Undo reverses the most recent edit.
func (s *Synced) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ed.Undo()
}

// BeginUndoGroup starts a new undo group.
func (s *Synced) BeginUndoGroup(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.BeginUndoGroup(name)
}

// EndUndoGroup ends the current undo group.
func (s *Synced) EndUndoGroup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.EndUndoGroup()
}

// CancelUndoGroup cancels the current undo group.
func (s *Synced) CancelUndoGroup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.CancelUndoGroup()
}

// ClearHistory removes all undo history.
func (s *Synced) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ed.ClearHistory()
}

// Text returns the current buffer content.
func (s *Synced) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.Text()
}

// Len returns the buffer length in bytes.
func (s *Synced) Len() ByteOffset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.Len()
}

// IsEmpty returns true if the buffer is empty.
func (s *Synced) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.IsEmpty()
}

// EqualString reports whether the buffer content equals the given string.
func (s *Synced) EqualString(str string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.EqualString(str)
}

// CanUndo returns true if undo is available.
func (s *Synced) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.CanUndo()
}

// UndoDepth returns the number of available undo operations.
func (s *Synced) UndoDepth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.UndoDepth()
}

// PeekUndo returns info about the next undo operation.
func (s *Synced) PeekUndo() (OperationInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.PeekUndo()
}

// UndoInfo returns info about all pending undo operations.
func (s *Synced) UndoInfo() []OperationInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.UndoInfo()
}

// ID returns the editor's unique identifier.
func (s *Synced) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.ID()
}

// DebugJSON renders the editor state as a JSON document.
func (s *Synced) DebugJSON() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ed.DebugJSON()
}
