package buffer

// ChangeType categorizes the type of change made to the buffer.
type ChangeType uint8

const (
	ChangeInsert  ChangeType = iota // Text was inserted
	ChangeDelete                    // Text was deleted
	ChangeReplace                   // Text was replaced
)

// String returns a string representation of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change describes one applied modification. Listeners registered with
// OnChange receive it after the buffer lock is released.
type Change struct {
	Type     ChangeType
	Range    Range  // Range in the old text
	NewRange Range  // Range in the new text
	OldText  string // Text that was removed
	NewText  string // Text that was added

	// LinesBefore and LinesAfter are the line counts around the change.
	LinesBefore uint32
	LinesAfter  uint32

	RevisionID RevisionID
}

// LineCountChanged reports whether the change added or removed lines.
func (c Change) LineCountChanged() bool {
	return c.LinesBefore != c.LinesAfter
}

func changeType(oldLen, newLen int) ChangeType {
	switch {
	case oldLen == 0:
		return ChangeInsert
	case newLen == 0:
		return ChangeDelete
	default:
		return ChangeReplace
	}
}
