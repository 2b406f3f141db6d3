package editor

import (
	"errors"

	"github.com/dshills/qedit/buffer"
	"github.com/dshills/qedit/history"
)

// Errors returned by editor operations. Buffer and history sentinels
// are re-exported so callers only need this package for errors.Is
// checks.
var (
	// ErrOffsetOutOfRange indicates a position is outside the valid buffer range.
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange

	// ErrRangeInvalid indicates an invalid delete range (negative or overrunning).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrReverseWithoutApply indicates an internal undo protocol violation.
	ErrReverseWithoutApply = history.ErrReverseWithoutApply

	// ErrReadOnly indicates an edit was attempted on a read-only editor.
	ErrReadOnly = errors.New("editor is read-only")
)
