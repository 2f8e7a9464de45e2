// Package buffer provides the editable document behind the text view.
//
// A Buffer stores its text as bytes with a table of line starts, so that
// offset/line conversion is a binary search. It hands out Positions:
// offsets that follow edits. Positions are not rewritten on every edit;
// the buffer appends each edit to a log and a Position replays the newer
// entries the next time it is read. When the log grows past its bound,
// every live position is resolved and the log starts over.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("one\ntwo\nthree")
//	pos, _ := buf.CreatePosition(4) // start of "two"
//	buf.Insert(0, "zero\n")
//	pos.Offset() // 9, still the start of "two"
//
// Thread Safety:
//
// All Buffer and Position methods are thread-safe. Change listeners are
// called synchronously after the write lock is released.
package buffer
