package buffer

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrLineOutOfRange   = errors.New("line out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// DefaultMaxEditLog is the default number of edits kept for lazy
// position resolution.
const DefaultMaxEditLog = 1024

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "\\r\\n"
	}
	return "\\n"
}

// Buffer is an editable text with a line index and edit-following
// positions. All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       []byte
	lineStarts []ByteOffset
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int

	// Edit log and live positions; see Position.
	editLog    []editRecord
	maxEditLog int
	positions  map[*Position]struct{}

	listenerMu sync.Mutex
	listeners  map[int]func(Change)
	nextID     int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineStarts: []ByteOffset{0},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		tabWidth:   4,
		maxEditLog: DefaultMaxEditLog,
		positions:  make(map[*Position]struct{}),
		listeners:  make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text = []byte(b.normalizeLineEndings(s))
	b.reindex()
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first; CRLF pairs may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// normalizeLineEndings converts all line endings to the buffer's preferred style.
func (b *Buffer) normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if b.lineEnding == LineEndingCRLF {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	return s
}

// reindex rebuilds the line start table. b.mu must be held for writing.
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, c := range b.text {
		if c == '\n' {
			b.lineStarts = append(b.lineStarts, ByteOffset(i+1))
		}
	}
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.text)
}

// TextRange returns text in the given byte range.
func (b *Buffer) TextRange(start, end ByteOffset) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if start < 0 || start > end || end > ByteOffset(len(b.text)) {
		return "", ErrRangeInvalid
	}
	return string(b.text[start:end]), nil
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uint32(len(b.lineStarts))
}

// LineText returns the text of a specific line (without line ending).
func (b *Buffer) LineText(line uint32) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end, err := b.lineSpanLocked(line)
	if err != nil {
		return "", err
	}
	return string(b.text[start:end]), nil
}

// LineStartOffset returns the byte offset of the start of a line.
func (b *Buffer) LineStartOffset(line uint32) (ByteOffset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return 0, fmt.Errorf("line %d of %d: %w", line, len(b.lineStarts), ErrLineOutOfRange)
	}
	return b.lineStarts[line], nil
}

// LineEndOffset returns the byte offset of the end of a line, before its
// line ending.
func (b *Buffer) LineEndOffset(line uint32) (ByteOffset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, end, err := b.lineSpanLocked(line)
	return end, err
}

func (b *Buffer) lineSpanLocked(line uint32) (start, end ByteOffset, err error) {
	if int(line) >= len(b.lineStarts) {
		return 0, 0, fmt.Errorf("line %d of %d: %w", line, len(b.lineStarts), ErrLineOutOfRange)
	}
	start = b.lineStarts[line]
	if int(line)+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1] - 1
		if b.lineEnding == LineEndingCRLF && end > start && b.text[end-1] == '\r' {
			end--
		}
	} else {
		end = ByteOffset(len(b.text))
	}
	return start, end, nil
}

// LineOfOffset returns the line containing offset. The offset equal to the
// buffer length belongs to the last line.
func (b *Buffer) LineOfOffset(offset ByteOffset) (uint32, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return 0, fmt.Errorf("offset %d of %d: %w", offset, len(b.text), ErrOffsetOutOfRange)
	}
	return b.lineOfOffsetLocked(offset), nil
}

func (b *Buffer) lineOfOffsetLocked(offset ByteOffset) uint32 {
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	return uint32(i - 1)
}

// OffsetToPoint converts a byte offset to line/column.
func (b *Buffer) OffsetToPoint(offset ByteOffset) (Point, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return Point{}, fmt.Errorf("offset %d of %d: %w", offset, len(b.text), ErrOffsetOutOfRange)
	}
	line := b.lineOfOffsetLocked(offset)
	return Point{Line: line, Column: uint32(offset - b.lineStarts[line])}, nil
}

// PointToOffset converts line/column to byte offset. Columns past the end
// of the line clamp to the line end.
func (b *Buffer) PointToOffset(point Point) (ByteOffset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end, err := b.lineSpanLocked(point.Line)
	if err != nil {
		return 0, err
	}
	return min(start+ByteOffset(point.Column), end), nil
}

// Positions

// CreatePosition returns a position at offset that follows later edits
// with BiasForward.
func (b *Buffer) CreatePosition(offset ByteOffset) (*Position, error) {
	return b.CreatePositionWithBias(offset, BiasForward)
}

// CreatePositionWithBias returns a position at offset with the given bias.
// The offset may equal the buffer length.
func (b *Buffer) CreatePositionWithBias(offset ByteOffset, bias Bias) (*Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset < 0 || offset > ByteOffset(len(b.text)) {
		return nil, fmt.Errorf("position at %d of %d: %w", offset, len(b.text), ErrOffsetOutOfRange)
	}
	p := &Position{buf: b, bias: bias, offset: offset, rev: b.revisionID}
	b.positions[p] = struct{}{}
	return p, nil
}

// PositionCount returns the number of live (unreleased) positions.
func (b *Buffer) PositionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.positions)
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	return b.Replace(offset, offset, text)
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end ByteOffset) error {
	_, err := b.Replace(start, end, "")
	return err
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	if start < 0 || start > end || end > ByteOffset(len(b.text)) {
		b.mu.Unlock()
		return 0, fmt.Errorf("replace %s: %w", NewRange(start, end), ErrRangeInvalid)
	}
	text = b.normalizeLineEndings(text)
	if start == end && text == "" {
		b.mu.Unlock()
		return start, nil
	}

	oldText := string(b.text[start:end])
	linesBefore := uint32(len(b.lineStarts))

	next := make([]byte, 0, len(b.text)-len(oldText)+len(text))
	next = append(next, b.text[:start]...)
	next = append(next, text...)
	next = append(next, b.text[end:]...)
	b.text = next
	b.reindex()

	if len(b.editLog) >= b.maxEditLog {
		b.compactLocked()
	}
	b.revisionID = NewRevisionID()
	b.editLog = append(b.editLog, editRecord{
		rev:    b.revisionID,
		start:  start,
		oldEnd: end,
		newLen: ByteOffset(len(text)),
	})

	newEnd := start + ByteOffset(len(text))
	change := Change{
		Type:        changeType(len(oldText), len(text)),
		Range:       Range{Start: start, End: end},
		NewRange:    Range{Start: start, End: newEnd},
		OldText:     oldText,
		NewText:     text,
		LinesBefore: linesBefore,
		LinesAfter:  uint32(len(b.lineStarts)),
		RevisionID:  b.revisionID,
	}
	b.mu.Unlock()

	b.notify(change)
	return newEnd, nil
}

// Change notification

// OnChange registers fn to be called after every modification. The
// returned function unregisters it.
func (b *Buffer) OnChange(fn func(Change)) (unsubscribe func()) {
	b.listenerMu.Lock()
	defer b.listenerMu.Unlock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return func() {
		b.listenerMu.Lock()
		defer b.listenerMu.Unlock()
		delete(b.listeners, id)
	}
}

func (b *Buffer) notify(c Change) {
	b.listenerMu.Lock()
	ids := make([]int, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Change), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.listeners[id])
	}
	b.listenerMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}
