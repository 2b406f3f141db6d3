package history

import (
	"fmt"
	"time"

	"github.com/tidwall/sjson"
)

// OperationInfo provides read-only info about a recorded operation.
// Used for displaying undo history to users.
type OperationInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the operation was recorded
	BytesDelta  int       // Positive for insertions, negative for deletions
}

// DebugJSON renders the pending undo entries as a JSON document, oldest
// first. The output is for inspection and debugging only; its exact
// layout is not a stable API.
func (s *Stack) DebugJSON() string {
	out, _ := sjson.Set("{}", "depth", len(s.undoStack))
	out, _ = sjson.Set(out, "maxEntries", s.maxEntries)
	out, _ = sjson.Set(out, "grouping", s.grouping)

	if len(s.undoStack) == 0 {
		out, _ = sjson.SetRaw(out, "entries", "[]")
		return out
	}

	for i, entry := range s.undoStack {
		prefix := fmt.Sprintf("entries.%d", i)
		out, _ = sjson.Set(out, prefix+".description", entry.op.Description())
		out, _ = sjson.Set(out, prefix+".timestamp", entry.timestamp.Format(time.RFC3339Nano))
		out, _ = sjson.Set(out, prefix+".bytesDelta", entry.op.BytesDelta())
	}
	return out
}
