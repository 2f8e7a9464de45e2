package buffer

import "fmt"

// Range is the half-open byte span [Start, End).
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange returns the span from start to end.
func NewRange(start, end ByteOffset) Range { return Range{Start: start, End: end} }

// Len is the number of bytes covered.
func (r Range) Len() ByteOffset { return r.End - r.Start }

// IsEmpty reports whether the span covers no bytes.
func (r Range) IsEmpty() bool { return r.Start == r.End }

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}
