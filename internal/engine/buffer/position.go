package buffer

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// ByteOffset represents a byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Point represents a line and column position.
// Both Line and Column are 0-indexed.
// Column is measured in bytes from the start of the line.
type Point struct {
	Line   uint32 // 0-indexed line number
	Column uint32 // 0-indexed column (byte offset within line)
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Bias decides where a position goes when text is inserted exactly at it.
type Bias uint8

const (
	// BiasForward moves the position to the end of text inserted at it,
	// so the position stays glued to the character that followed it.
	BiasForward Bias = iota

	// BiasBackward keeps the position in front of text inserted at it.
	BiasBackward
)

// editRecord is one entry of the buffer's edit log: the bytes in
// [start, oldEnd) were replaced by newLen bytes, producing revision rev.
type editRecord struct {
	rev    RevisionID
	start  ByteOffset
	oldEnd ByteOffset
	newLen ByteOffset
}

// transform maps an offset from before this edit to after it.
func (e editRecord) transform(off ByteOffset, bias Bias) ByteOffset {
	switch {
	case off >= e.oldEnd && off > e.start:
		off -= e.oldEnd - e.start
	case off > e.start:
		off = e.start
	}
	if off > e.start || (off == e.start && bias == BiasForward && e.newLen > 0) {
		off += e.newLen
	}
	return off
}

// Position is an offset into a Buffer that follows edits. Its value is
// not rewritten when the buffer changes; instead the edits made since the
// position was last read are replayed when Offset is called.
//
// A Position is safe for concurrent use.
type Position struct {
	buf  *Buffer
	bias Bias

	mu       sync.Mutex
	offset   ByteOffset
	rev      RevisionID
	released bool
}

// Offset returns the position's current offset in the buffer.
func (p *Position) Offset() ByteOffset {
	b := p.buf
	b.mu.RLock()
	defer b.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	b.resolveLocked(p)
	return p.offset
}

// Bias returns the insertion bias of the position.
func (p *Position) Bias() Bias {
	return p.bias
}

// Release detaches the position from its buffer. A released position keeps
// reporting the offset it had when released.
func (p *Position) Release() {
	b := p.buf
	b.mu.Lock()
	defer b.mu.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return
	}
	b.resolveLocked(p)
	p.released = true
	delete(b.positions, p)
}

// String returns a human-readable representation of the position.
func (p *Position) String() string {
	return fmt.Sprintf("Position(%d)", p.Offset())
}

// resolveLocked replays the edits newer than p.rev onto p.
// b.mu (read or write) and p.mu must be held.
func (b *Buffer) resolveLocked(p *Position) {
	if p.released || p.rev == b.revisionID {
		return
	}
	i := sort.Search(len(b.editLog), func(i int) bool {
		return b.editLog[i].rev > p.rev
	})
	for _, e := range b.editLog[i:] {
		p.offset = e.transform(p.offset, p.bias)
	}
	p.rev = b.revisionID
}

// compactLocked resolves every live position and drops the edit log.
// b.mu must be held for writing.
func (b *Buffer) compactLocked() {
	for p := range b.positions {
		p.mu.Lock()
		b.resolveLocked(p)
		p.mu.Unlock()
	}
	b.editLog = b.editLog[:0]
}
